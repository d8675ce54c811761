package quadlet

import (
	"iter"
	"strings"
)

// Kube is the payload of a .kube quadlet file.
type Kube struct {
	Yaml                string   `yaml:"yaml"`
	ConfigMap           []string `yaml:"config_map,omitempty"`
	Network             []string `yaml:"network,omitempty"`
	PublishPort         []string `yaml:"publish_port,omitempty"`
	UserNS              string   `yaml:"userns,omitempty"`
	AutoUpdate          []string `yaml:"auto_update,omitempty"`
	ExitCodePropagation string   `yaml:"exit_code_propagation,omitempty"`
	KubeDownForce       bool     `yaml:"kube_down_force,omitempty"`
	PodmanArgs          []string `yaml:"podman_args,omitempty"`
}

// String renders the [Kube] section.
func (k *Kube) String() string {
	var b strings.Builder
	b.WriteString(sectionHeader(KindKube))
	if k.Yaml != "" {
		b.WriteString(formatKeyValue("Yaml", k.Yaml))
	}
	writeEach(&b, "ConfigMap", k.ConfigMap)
	writeEach(&b, "Network", k.Network)
	writeEach(&b, "PublishPort", k.PublishPort)
	if k.UserNS != "" {
		b.WriteString(formatKeyValue("UserNS", k.UserNS))
	}
	writeEach(&b, "AutoUpdate", k.AutoUpdate)
	if k.ExitCodePropagation != "" {
		b.WriteString(formatKeyValue("ExitCodePropagation", k.ExitCodePropagation))
	}
	if k.KubeDownForce {
		b.WriteString(formatBool("KubeDownForce", true))
	}
	if len(k.PodmanArgs) > 0 {
		b.WriteString(formatKeyValueSlice("PodmanArgs", k.PodmanArgs))
	}
	return b.String()
}

// Downgrade rejects options the given version's quadlet does not understand.
// Unlike containers, kube options have no PodmanArgs escape hatch that
// predates them, so gated options are errors.
func (k *Kube) Downgrade(version PodmanVersion) error {
	if version < V4_7 {
		if k.ExitCodePropagation != "" {
			return &OptionError{Option: "ExitCodePropagation", Value: k.ExitCodePropagation, Supported: V4_7}
		}
		if k.KubeDownForce {
			return &OptionError{Option: "KubeDownForce", Value: "yes", Supported: V4_7}
		}
	}
	if version < V4_6 && len(k.AutoUpdate) > 0 {
		return &OptionError{Option: "AutoUpdate", Value: k.AutoUpdate[0], Supported: V4_6}
	}
	if version < V4_5 && len(k.PodmanArgs) > 0 {
		return &OptionError{Option: "PodmanArgs", Value: strings.Join(k.PodmanArgs, " "), Supported: V4_5}
	}
	return nil
}

// HostPaths yields handles to the manifest path and config map paths.
func (k *Kube) HostPaths() iter.Seq[*string] {
	return func(yield func(*string) bool) {
		if k.Yaml != "" && !yield(&k.Yaml) {
			return
		}
		for i := range k.ConfigMap {
			if !yield(&k.ConfigMap[i]) {
				return
			}
		}
	}
}

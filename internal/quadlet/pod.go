package quadlet

import (
	"iter"
	"strings"
)

// Pod is the payload of a .pod quadlet file. Pod units only exist on podman
// 5.0 and later; the kind gate lives in Resource.Downgrade, so every option
// here is as old as the kind itself.
type Pod struct {
	PodName     string   `yaml:"pod_name,omitempty"`
	Network     []string `yaml:"network,omitempty"`
	PublishPort []string `yaml:"publish_port,omitempty"`
	Mounts      []Mount  `yaml:"volume,omitempty"`
	PodmanArgs  []string `yaml:"podman_args,omitempty"`
}

// String renders the [Pod] section.
func (p *Pod) String() string {
	var b strings.Builder
	b.WriteString(sectionHeader(KindPod))
	if p.PodName != "" {
		b.WriteString(formatKeyValue("PodName", p.PodName))
	}
	writeEach(&b, "Network", p.Network)
	writeEach(&b, "PublishPort", p.PublishPort)
	for _, m := range p.Mounts {
		b.WriteString(formatKeyValue("Volume", m.String()))
	}
	if len(p.PodmanArgs) > 0 {
		b.WriteString(formatKeyValueSlice("PodmanArgs", p.PodmanArgs))
	}
	return b.String()
}

// Downgrade is a no-op below the kind gate handled by Resource.
func (p *Pod) Downgrade(PodmanVersion) error { return nil }

// HostPaths yields handles to host-directory mount sources.
func (p *Pod) HostPaths() iter.Seq[*string] {
	return func(yield func(*string) bool) {
		for i := range p.Mounts {
			if !isHostPath(p.Mounts[i].Source) {
				continue
			}
			if !yield(&p.Mounts[i].Source) {
				return
			}
		}
	}
}

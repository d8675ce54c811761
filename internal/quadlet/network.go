package quadlet

import (
	"iter"
	"strings"
)

// Network is the payload of a .network quadlet file. Networks embed no host
// paths.
type Network struct {
	NetworkName string   `yaml:"network_name,omitempty"`
	Driver      string   `yaml:"driver,omitempty"`
	Gateway     []string `yaml:"gateway,omitempty"`
	IPRange     []string `yaml:"ip_range,omitempty"`
	Subnet      []string `yaml:"subnet,omitempty"`
	IPv6        bool     `yaml:"ipv6,omitempty"`
	Internal    bool     `yaml:"internal,omitempty"`
	DisableDNS  bool     `yaml:"disable_dns,omitempty"`
	DNS         []string `yaml:"dns,omitempty"`
	IPAMDriver  string   `yaml:"ipam_driver,omitempty"`
	Label       []string `yaml:"label,omitempty"`
	Options     []string `yaml:"options,omitempty"`
	PodmanArgs  []string `yaml:"podman_args,omitempty"`
}

// String renders the [Network] section.
func (n *Network) String() string {
	var b strings.Builder
	b.WriteString(sectionHeader(KindNetwork))
	if n.NetworkName != "" {
		b.WriteString(formatKeyValue("NetworkName", n.NetworkName))
	}
	if n.Driver != "" {
		b.WriteString(formatKeyValue("Driver", n.Driver))
	}
	writeEach(&b, "Gateway", n.Gateway)
	writeEach(&b, "IPRange", n.IPRange)
	writeEach(&b, "Subnet", n.Subnet)
	if n.IPv6 {
		b.WriteString(formatBool("IPv6", true))
	}
	if n.Internal {
		b.WriteString(formatBool("Internal", true))
	}
	if n.DisableDNS {
		b.WriteString(formatBool("DisableDNS", true))
	}
	writeEach(&b, "DNS", n.DNS)
	if n.IPAMDriver != "" {
		b.WriteString(formatKeyValue("IPAMDriver", n.IPAMDriver))
	}
	writeEach(&b, "Label", n.Label)
	writeEach(&b, "Options", n.Options)
	if len(n.PodmanArgs) > 0 {
		b.WriteString(formatKeyValueSlice("PodmanArgs", n.PodmanArgs))
	}
	return b.String()
}

// Downgrade rejects options the given version's quadlet does not understand.
func (n *Network) Downgrade(version PodmanVersion) error {
	if version < V4_7 && len(n.DNS) > 0 {
		return &OptionError{Option: "DNS", Value: n.DNS[0], Supported: V4_7}
	}
	if version < V4_5 {
		if n.IPAMDriver != "" {
			return &OptionError{Option: "IPAMDriver", Value: n.IPAMDriver, Supported: V4_5}
		}
		if len(n.PodmanArgs) > 0 {
			return &OptionError{Option: "PodmanArgs", Value: strings.Join(n.PodmanArgs, " "), Supported: V4_5}
		}
	}
	return nil
}

// HostPaths yields nothing; networks store no host paths.
func (n *Network) HostPaths() iter.Seq[*string] { return noPaths }

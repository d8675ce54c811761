package quadlet

import (
	"iter"
	"strings"
)

// Volume is the payload of a .volume quadlet file.
type Volume struct {
	VolumeName string   `yaml:"volume_name,omitempty"`
	Driver     string   `yaml:"driver,omitempty"`
	Device     string   `yaml:"device,omitempty"`
	Type       string   `yaml:"type,omitempty"`
	Copy       bool     `yaml:"copy,omitempty"`
	Group      string   `yaml:"group,omitempty"`
	Image      string   `yaml:"image,omitempty"`
	Label      []string `yaml:"label,omitempty"`
	Options    []string `yaml:"options,omitempty"`
	PodmanArgs []string `yaml:"podman_args,omitempty"`
}

// String renders the [Volume] section.
func (v *Volume) String() string {
	var b strings.Builder
	b.WriteString(sectionHeader(KindVolume))
	if v.VolumeName != "" {
		b.WriteString(formatKeyValue("VolumeName", v.VolumeName))
	}
	if v.Driver != "" {
		b.WriteString(formatKeyValue("Driver", v.Driver))
	}
	if v.Device != "" {
		b.WriteString(formatKeyValue("Device", v.Device))
	}
	if v.Type != "" {
		b.WriteString(formatKeyValue("Type", v.Type))
	}
	if v.Copy {
		b.WriteString(formatBool("Copy", true))
	}
	if v.Group != "" {
		b.WriteString(formatKeyValue("Group", v.Group))
	}
	if v.Image != "" {
		b.WriteString(formatKeyValue("Image", v.Image))
	}
	writeEach(&b, "Label", v.Label)
	writeEach(&b, "Options", v.Options)
	if len(v.PodmanArgs) > 0 {
		b.WriteString(formatKeyValueSlice("PodmanArgs", v.PodmanArgs))
	}
	return b.String()
}

// Downgrade rejects options the given version's quadlet does not understand.
func (v *Volume) Downgrade(version PodmanVersion) error {
	if version < V4_8 && v.Image != "" {
		return &OptionError{Option: "Image", Value: v.Image, Supported: V4_8}
	}
	if version < V4_6 && v.Driver != "" {
		return &OptionError{Option: "Driver", Value: v.Driver, Supported: V4_6}
	}
	if version < V4_5 && len(v.PodmanArgs) > 0 {
		return &OptionError{Option: "PodmanArgs", Value: strings.Join(v.PodmanArgs, " "), Supported: V4_5}
	}
	return nil
}

// HostPaths yields a handle to the backing device when it is a host path.
func (v *Volume) HostPaths() iter.Seq[*string] {
	return func(yield func(*string) bool) {
		if isHostPath(v.Device) {
			yield(&v.Device)
		}
	}
}

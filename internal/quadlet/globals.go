package quadlet

import (
	"iter"
	"strings"
)

// Globals holds podman options that apply regardless of resource kind. They
// render as extra keys appended into the resource's own section, not as a
// section of their own.
type Globals struct {
	GlobalArgs           []string `yaml:"global_args,omitempty"`
	ContainersConfModule []string `yaml:"containers_conf_module,omitempty"`
}

// String renders the global option keys without a section header.
func (g *Globals) String() string {
	var b strings.Builder
	writeEach(&b, "ContainersConfModule", g.ContainersConfModule)
	if len(g.GlobalArgs) > 0 {
		b.WriteString(formatKeyValueSlice("GlobalArgs", g.GlobalArgs))
	}
	return b.String()
}

// Downgrade rejects global options older quadlets do not understand. Both
// keys arrived together in podman 4.8.
func (g *Globals) Downgrade(version PodmanVersion) error {
	if version >= V4_8 {
		return nil
	}
	if len(g.ContainersConfModule) > 0 {
		return &OptionError{Option: "ContainersConfModule", Value: g.ContainersConfModule[0], Supported: V4_8}
	}
	if len(g.GlobalArgs) > 0 {
		return &OptionError{Option: "GlobalArgs", Value: strings.Join(g.GlobalArgs, " "), Supported: V4_8}
	}
	return nil
}

// HostPaths yields handles to containers.conf module paths.
func (g *Globals) HostPaths() iter.Seq[*string] {
	return func(yield func(*string) bool) {
		for i := range g.ContainersConfModule {
			if !yield(&g.ContainersConfModule[i]) {
				return
			}
		}
	}
}

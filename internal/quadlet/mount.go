package quadlet

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mount is a single Volume= entry. Source is either a host path, a named
// volume, or a reference to a generated .volume unit; keeping it a field of
// its own (rather than part of a "src:dst" string) lets host path handles
// address it directly.
type Mount struct {
	Source      string
	Destination string
	Options     string
}

// ParseMount splits the "source:destination[:options]" wire form.
func ParseMount(s string) Mount {
	parts := strings.SplitN(s, ":", 3)
	m := Mount{Source: parts[0]}
	if len(parts) > 1 {
		m.Destination = parts[1]
	}
	if len(parts) > 2 {
		m.Options = parts[2]
	}
	return m
}

// String renders the mount back into its wire form.
func (m Mount) String() string {
	s := m.Source
	if m.Destination != "" {
		s += ":" + m.Destination
	}
	if m.Options != "" {
		s += ":" + m.Options
	}
	return s
}

// UnmarshalYAML accepts the "source:destination[:options]" form used in
// manifests.
func (m *Mount) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return fmt.Errorf("empty volume mount")
	}
	*m = ParseMount(s)
	return nil
}

// Secret is a single Secret= entry.
type Secret struct {
	Source string `yaml:"source"`
	Type   string `yaml:"type,omitempty"`
	Target string `yaml:"target,omitempty"`
	UID    string `yaml:"uid,omitempty"`
	GID    string `yaml:"gid,omitempty"`
	Mode   string `yaml:"mode,omitempty"`
}

// ParseSecret splits the "source[,opt=value...]" wire form.
func ParseSecret(s string) Secret {
	parts := strings.Split(s, ",")
	secret := Secret{Source: parts[0]}
	for _, part := range parts[1:] {
		key, value, _ := strings.Cut(part, "=")
		switch key {
		case "type":
			secret.Type = value
		case "target":
			secret.Target = value
		case "uid":
			secret.UID = value
		case "gid":
			secret.GID = value
		case "mode":
			secret.Mode = value
		}
	}
	return secret
}

// String renders the secret back into its wire form.
func (s Secret) String() string {
	opts := []string{s.Source}
	if s.Type != "" {
		opts = append(opts, "type="+s.Type)
	}
	if s.Target != "" {
		opts = append(opts, "target="+s.Target)
	}
	if s.UID != "" {
		opts = append(opts, "uid="+s.UID)
	}
	if s.GID != "" {
		opts = append(opts, "gid="+s.GID)
	}
	if s.Mode != "" {
		opts = append(opts, "mode="+s.Mode)
	}
	return strings.Join(opts, ",")
}

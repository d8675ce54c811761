// Package manifest builds quadlet files from a YAML description of units.
// It is the producer side of the model: raw input is validated here so the
// quadlet package only ever sees well-formed data.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ananthb/podlet/internal/quadlet"
)

// Manifest is the top-level YAML document: a list of units to generate.
type Manifest struct {
	Units []UnitSpec `yaml:"units"`
}

// UnitSpec describes one quadlet file. Exactly one resource block must be
// set; the blocks reuse the model's own YAML mapping.
type UnitSpec struct {
	Name      string                 `yaml:"name"`
	Unit      *quadlet.UnitConfig    `yaml:"unit,omitempty"`
	Container *quadlet.Container     `yaml:"container,omitempty"`
	Pod       *quadlet.Pod           `yaml:"pod,omitempty"`
	Kube      *quadlet.Kube          `yaml:"kube,omitempty"`
	Network   *quadlet.Network       `yaml:"network,omitempty"`
	Volume    *quadlet.Volume        `yaml:"volume,omitempty"`
	Image     *quadlet.Image         `yaml:"image,omitempty"`
	Globals   quadlet.Globals        `yaml:"globals,omitempty"`
	Service   *quadlet.ServiceConfig `yaml:"service,omitempty"`
	Install   *quadlet.InstallConfig `yaml:"install,omitempty"`
}

// Parse decodes a manifest document and builds the described quadlet files.
func Parse(data []byte) ([]quadlet.File, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Units) == 0 {
		return nil, fmt.Errorf("manifest contains no units")
	}

	files := make([]quadlet.File, 0, len(m.Units))
	for i := range m.Units {
		file, err := m.Units[i].build()
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, nil
}

func (s *UnitSpec) build() (*quadlet.File, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("unit is missing a name")
	}

	resource, err := s.resource()
	if err != nil {
		return nil, fmt.Errorf("unit %q: %w", s.Name, err)
	}

	return &quadlet.File{
		Name:     s.Name,
		Unit:     s.Unit,
		Resource: resource,
		Globals:  s.Globals,
		Service:  s.Service,
		Install:  s.Install,
	}, nil
}

func (s *UnitSpec) resource() (quadlet.Resource, error) {
	var (
		resource quadlet.Resource
		count    int
	)
	if s.Container != nil {
		// The auto-update policy travels as a label in raw input; it becomes
		// a first-class option here and only falls back to a label when
		// downgrading below versions that understand it.
		if autoUpdate, ok := quadlet.ExtractAutoUpdateFromLabels(&s.Container.Label); ok {
			s.Container.AutoUpdate = autoUpdate
		}
		resource = quadlet.NewContainerResource(s.Container)
		count++
	}
	if s.Pod != nil {
		resource = quadlet.NewPodResource(s.Pod)
		count++
	}
	if s.Kube != nil {
		resource = quadlet.NewKubeResource(s.Kube)
		count++
	}
	if s.Network != nil {
		resource = quadlet.NewNetworkResource(s.Network)
		count++
	}
	if s.Volume != nil {
		resource = quadlet.NewVolumeResource(s.Volume)
		count++
	}
	if s.Image != nil {
		resource = quadlet.NewImageResource(s.Image)
		count++
	}

	switch count {
	case 0:
		return quadlet.Resource{}, fmt.Errorf("no resource block set")
	case 1:
		return resource, nil
	}
	return quadlet.Resource{}, fmt.Errorf("multiple resource blocks set")
}

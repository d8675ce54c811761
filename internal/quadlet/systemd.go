package quadlet

import (
	"strconv"
	"strings"
)

// UnitConfig is the [Unit] metadata block of a generated file.
type UnitConfig struct {
	Description   string   `yaml:"description,omitempty"`
	Documentation []string `yaml:"documentation,omitempty"`
	Wants         []string `yaml:"wants,omitempty"`
	Requires      []string `yaml:"requires,omitempty"`
	Before        []string `yaml:"before,omitempty"`
	After         []string `yaml:"after,omitempty"`
}

// String renders the [Unit] section.
func (u *UnitConfig) String() string {
	var b strings.Builder
	b.WriteString("[Unit]\n")
	if u.Description != "" {
		b.WriteString(formatKeyValue("Description", u.Description))
	}
	writeEach(&b, "Documentation", u.Documentation)
	if len(u.Wants) > 0 {
		b.WriteString(formatKeyValueSlice("Wants", u.Wants))
	}
	if len(u.Requires) > 0 {
		b.WriteString(formatKeyValueSlice("Requires", u.Requires))
	}
	if len(u.Before) > 0 {
		b.WriteString(formatKeyValueSlice("Before", u.Before))
	}
	if len(u.After) > 0 {
		b.WriteString(formatKeyValueSlice("After", u.After))
	}
	return b.String()
}

// ServiceConfig is the [Service] override block of a generated file.
type ServiceConfig struct {
	Restart         string `yaml:"restart,omitempty"`
	TimeoutStartSec int    `yaml:"timeout_start_sec,omitempty"`
	Type            string `yaml:"type,omitempty"`
	RemainAfterExit bool   `yaml:"remain_after_exit,omitempty"`
}

// String renders the [Service] section.
func (s *ServiceConfig) String() string {
	var b strings.Builder
	b.WriteString("[Service]\n")
	if s.Type != "" {
		b.WriteString(formatKeyValue("Type", s.Type))
	}
	if s.Restart != "" {
		b.WriteString(formatKeyValue("Restart", s.Restart))
	}
	if s.TimeoutStartSec != 0 {
		b.WriteString(formatKeyValue("TimeoutStartSec", strconv.Itoa(s.TimeoutStartSec)))
	}
	if s.RemainAfterExit {
		b.WriteString(formatBool("RemainAfterExit", true))
	}
	return b.String()
}

// InstallConfig is the [Install] block of a generated file.
type InstallConfig struct {
	WantedBy   []string `yaml:"wanted_by,omitempty"`
	RequiredBy []string `yaml:"required_by,omitempty"`
}

// String renders the [Install] section.
func (i *InstallConfig) String() string {
	var b strings.Builder
	b.WriteString("[Install]\n")
	writeEach(&b, "WantedBy", i.WantedBy)
	writeEach(&b, "RequiredBy", i.RequiredBy)
	return b.String()
}

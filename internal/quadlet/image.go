package quadlet

import (
	"iter"
	"strings"
)

// Image is the payload of a .image quadlet file. Image units only exist on
// podman 4.8 and later; the kind gate lives in Resource.Downgrade.
type Image struct {
	Image      string   `yaml:"image"`
	AuthFile   string   `yaml:"auth_file,omitempty"`
	CertDir    string   `yaml:"cert_dir,omitempty"`
	AllTags    bool     `yaml:"all_tags,omitempty"`
	Arch       string   `yaml:"arch,omitempty"`
	OS         string   `yaml:"os,omitempty"`
	Variant    string   `yaml:"variant,omitempty"`
	TLSVerify  *bool    `yaml:"tls_verify,omitempty"`
	PodmanArgs []string `yaml:"podman_args,omitempty"`
}

// String renders the [Image] section.
func (i *Image) String() string {
	var b strings.Builder
	b.WriteString(sectionHeader(KindImage))
	if i.Image != "" {
		b.WriteString(formatKeyValue("Image", i.Image))
	}
	if i.AuthFile != "" {
		b.WriteString(formatKeyValue("AuthFile", i.AuthFile))
	}
	if i.CertDir != "" {
		b.WriteString(formatKeyValue("CertDir", i.CertDir))
	}
	if i.AllTags {
		b.WriteString(formatBool("AllTags", true))
	}
	if i.Arch != "" {
		b.WriteString(formatKeyValue("Arch", i.Arch))
	}
	if i.OS != "" {
		b.WriteString(formatKeyValue("OS", i.OS))
	}
	if i.Variant != "" {
		b.WriteString(formatKeyValue("Variant", i.Variant))
	}
	if i.TLSVerify != nil {
		b.WriteString(formatBool("TLSVerify", *i.TLSVerify))
	}
	if len(i.PodmanArgs) > 0 {
		b.WriteString(formatKeyValueSlice("PodmanArgs", i.PodmanArgs))
	}
	return b.String()
}

// Downgrade is a no-op below the kind gate handled by Resource.
func (i *Image) Downgrade(PodmanVersion) error { return nil }

// HostPaths yields handles to the auth file and certificate directory.
func (i *Image) HostPaths() iter.Seq[*string] {
	return pathsOf(&i.AuthFile, &i.CertDir)
}

// Package parse reads rendered quadlet unit text back into the model. It is
// the inverse of the model's own rendering for files produced by this tool.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/ananthb/podlet/internal/quadlet"
)

// ParseFile parses rendered quadlet unit text into a File. The name is the
// unit file's base name without extension; the kind is taken from which
// resource section the text contains.
func ParseFile(name string, data []byte) (*quadlet.File, error) {
	opts := ini.LoadOptions{AllowShadows: true}
	source, err := ini.LoadSources(opts, data)
	if err != nil {
		return nil, fmt.Errorf("parsing unit text: %w", err)
	}

	file := &quadlet.File{Name: name}
	var resourceSection *ini.Section

	for _, sec := range source.Sections() {
		switch sec.Name() {
		case ini.DefaultSection:
			if len(sec.Keys()) > 0 {
				return nil, fmt.Errorf("keys outside of a section: %v", sec.KeyStrings())
			}
		case "Unit":
			file.Unit = parseUnit(sec)
		case "Service":
			file.Service = parseService(sec)
		case "Install":
			file.Install = parseInstall(sec)
		case "Container", "Pod", "Kube", "Network", "Volume", "Image":
			if resourceSection != nil {
				return nil, fmt.Errorf("multiple resource sections: [%s] and [%s]",
					resourceSection.Name(), sec.Name())
			}
			resourceSection = sec
		default:
			return nil, fmt.Errorf("unknown section [%s]", sec.Name())
		}
	}

	if resourceSection == nil {
		return nil, errors.New("no resource section found")
	}

	// Global option keys live inside the resource section.
	file.Globals = quadlet.Globals{
		ContainersConfModule: values(resourceSection, "ContainersConfModule"),
		GlobalArgs:           listValue(resourceSection, "GlobalArgs"),
	}

	file.Resource, err = parseResource(resourceSection)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func parseResource(sec *ini.Section) (quadlet.Resource, error) {
	switch sec.Name() {
	case "Container":
		container, err := parseContainer(sec)
		if err != nil {
			return quadlet.Resource{}, err
		}
		return quadlet.NewContainerResource(container), nil
	case "Pod":
		return quadlet.NewPodResource(parsePod(sec)), nil
	case "Kube":
		return quadlet.NewKubeResource(parseKube(sec)), nil
	case "Network":
		return quadlet.NewNetworkResource(parseNetwork(sec)), nil
	case "Volume":
		return quadlet.NewVolumeResource(parseVolume(sec)), nil
	case "Image":
		return quadlet.NewImageResource(parseImage(sec)), nil
	}
	return quadlet.Resource{}, fmt.Errorf("unknown resource section [%s]", sec.Name())
}

func parseContainer(sec *ini.Section) (*quadlet.Container, error) {
	container := &quadlet.Container{
		Image:           value(sec, "Image"),
		Rootfs:          value(sec, "Rootfs"),
		ContainerName:   value(sec, "ContainerName"),
		Pod:             value(sec, "Pod"),
		Label:           values(sec, "Label"),
		Annotation:      values(sec, "Annotation"),
		PublishPort:     values(sec, "PublishPort"),
		EnvironmentFile: values(sec, "EnvironmentFile"),
		Network:         values(sec, "Network"),
		NetworkAlias:    values(sec, "NetworkAlias"),
		Exec:            listValue(sec, "Exec"),
		Entrypoint:      listValue(sec, "Entrypoint"),
		User:            value(sec, "User"),
		Group:           value(sec, "Group"),
		WorkingDir:      value(sec, "WorkingDir"),
		RunInit:         boolValue(sec, "RunInit"),
		ReadOnly:        boolValue(sec, "ReadOnly"),
		HostName:        value(sec, "HostName"),
		Pull:            value(sec, "Pull"),
		UserNS:          value(sec, "UserNS"),
		Tmpfs:           values(sec, "Tmpfs"),
		Sysctl:          values(sec, "Sysctl"),
		Mask:            values(sec, "Mask"),
		Unmask:          values(sec, "Unmask"),
		DNS:             values(sec, "DNS"),
		DNSOption:       values(sec, "DNSOption"),
		DNSSearch:       values(sec, "DNSSearch"),
		ShmSize:         value(sec, "ShmSize"),
		GIDMap:          values(sec, "GIDMap"),
		UIDMap:          values(sec, "UIDMap"),
		SubGIDMap:       value(sec, "SubGIDMap"),
		SubUIDMap:       value(sec, "SubUIDMap"),
		Ulimit:          values(sec, "Ulimit"),
		StopTimeout:     intValue(sec, "StopTimeout"),
		PodmanArgs:      listValue(sec, "PodmanArgs"),
	}

	if raw := value(sec, "AutoUpdate"); raw != "" {
		autoUpdate, err := quadlet.ParseAutoUpdate(raw)
		if err != nil {
			return nil, err
		}
		container.AutoUpdate = autoUpdate
	}
	for _, env := range values(sec, "Environment") {
		key, val, _ := strings.Cut(env, "=")
		if container.Environment == nil {
			container.Environment = make(map[string]string)
		}
		container.Environment[key] = val
	}
	for _, mount := range values(sec, "Volume") {
		container.Mounts = append(container.Mounts, quadlet.ParseMount(mount))
	}
	for _, secret := range values(sec, "Secret") {
		container.Secrets = append(container.Secrets, quadlet.ParseSecret(secret))
	}
	return container, nil
}

func parsePod(sec *ini.Section) *quadlet.Pod {
	pod := &quadlet.Pod{
		PodName:     value(sec, "PodName"),
		Network:     values(sec, "Network"),
		PublishPort: values(sec, "PublishPort"),
		PodmanArgs:  listValue(sec, "PodmanArgs"),
	}
	for _, mount := range values(sec, "Volume") {
		pod.Mounts = append(pod.Mounts, quadlet.ParseMount(mount))
	}
	return pod
}

func parseKube(sec *ini.Section) *quadlet.Kube {
	return &quadlet.Kube{
		Yaml:                value(sec, "Yaml"),
		ConfigMap:           values(sec, "ConfigMap"),
		Network:             values(sec, "Network"),
		PublishPort:         values(sec, "PublishPort"),
		UserNS:              value(sec, "UserNS"),
		AutoUpdate:          values(sec, "AutoUpdate"),
		ExitCodePropagation: value(sec, "ExitCodePropagation"),
		KubeDownForce:       boolValue(sec, "KubeDownForce"),
		PodmanArgs:          listValue(sec, "PodmanArgs"),
	}
}

func parseNetwork(sec *ini.Section) *quadlet.Network {
	return &quadlet.Network{
		NetworkName: value(sec, "NetworkName"),
		Driver:      value(sec, "Driver"),
		Gateway:     values(sec, "Gateway"),
		IPRange:     values(sec, "IPRange"),
		Subnet:      values(sec, "Subnet"),
		IPv6:        boolValue(sec, "IPv6"),
		Internal:    boolValue(sec, "Internal"),
		DisableDNS:  boolValue(sec, "DisableDNS"),
		DNS:         values(sec, "DNS"),
		IPAMDriver:  value(sec, "IPAMDriver"),
		Label:       values(sec, "Label"),
		Options:     values(sec, "Options"),
		PodmanArgs:  listValue(sec, "PodmanArgs"),
	}
}

func parseVolume(sec *ini.Section) *quadlet.Volume {
	return &quadlet.Volume{
		VolumeName: value(sec, "VolumeName"),
		Driver:     value(sec, "Driver"),
		Device:     value(sec, "Device"),
		Type:       value(sec, "Type"),
		Copy:       boolValue(sec, "Copy"),
		Group:      value(sec, "Group"),
		Image:      value(sec, "Image"),
		Label:      values(sec, "Label"),
		Options:    values(sec, "Options"),
		PodmanArgs: listValue(sec, "PodmanArgs"),
	}
}

func parseImage(sec *ini.Section) *quadlet.Image {
	image := &quadlet.Image{
		Image:      value(sec, "Image"),
		AuthFile:   value(sec, "AuthFile"),
		CertDir:    value(sec, "CertDir"),
		AllTags:    boolValue(sec, "AllTags"),
		Arch:       value(sec, "Arch"),
		OS:         value(sec, "OS"),
		Variant:    value(sec, "Variant"),
		PodmanArgs: listValue(sec, "PodmanArgs"),
	}
	if sec.HasKey("TLSVerify") {
		verify := boolValue(sec, "TLSVerify")
		image.TLSVerify = &verify
	}
	return image
}

func parseUnit(sec *ini.Section) *quadlet.UnitConfig {
	return &quadlet.UnitConfig{
		Description:   value(sec, "Description"),
		Documentation: values(sec, "Documentation"),
		Wants:         listValue(sec, "Wants"),
		Requires:      listValue(sec, "Requires"),
		Before:        listValue(sec, "Before"),
		After:         listValue(sec, "After"),
	}
}

func parseService(sec *ini.Section) *quadlet.ServiceConfig {
	return &quadlet.ServiceConfig{
		Type:            value(sec, "Type"),
		Restart:         value(sec, "Restart"),
		TimeoutStartSec: intValue(sec, "TimeoutStartSec"),
		RemainAfterExit: boolValue(sec, "RemainAfterExit"),
	}
}

func parseInstall(sec *ini.Section) *quadlet.InstallConfig {
	return &quadlet.InstallConfig{
		WantedBy:   values(sec, "WantedBy"),
		RequiredBy: values(sec, "RequiredBy"),
	}
}

// value returns a key's value, or "" when absent.
func value(sec *ini.Section, key string) string {
	if !sec.HasKey(key) {
		return ""
	}
	return sec.Key(key).Value()
}

// values returns every occurrence of a repeated key, in order.
func values(sec *ini.Section, key string) []string {
	if !sec.HasKey(key) {
		return nil
	}
	return sec.Key(key).ValueWithShadows()
}

// listValue splits space-joined list keys, accumulating across repeats.
func listValue(sec *ini.Section, key string) []string {
	var list []string
	for _, v := range values(sec, key) {
		list = append(list, strings.Fields(v)...)
	}
	return list
}

// boolValue reads a systemd-style boolean; absent or unrecognized is false.
func boolValue(sec *ini.Section, key string) bool {
	switch value(sec, key) {
	case "yes", "true", "on", "1":
		return true
	}
	return false
}

// intValue reads an integer key; absent or malformed is zero.
func intValue(sec *ini.Section, key string) int {
	n, err := strconv.Atoi(value(sec, key))
	if err != nil {
		return 0
	}
	return n
}

package quadlet

import (
	"iter"
	"sort"
	"strconv"
	"strings"
)

// Container is the payload of a .container quadlet file.
type Container struct {
	Image           string            `yaml:"image,omitempty"`
	Rootfs          string            `yaml:"rootfs,omitempty"`
	ContainerName   string            `yaml:"container_name,omitempty"`
	AutoUpdate      AutoUpdate        `yaml:"auto_update,omitempty"`
	Pod             string            `yaml:"pod,omitempty"`
	Label           []string          `yaml:"label,omitempty"`
	Annotation      []string          `yaml:"annotation,omitempty"`
	PublishPort     []string          `yaml:"publish_port,omitempty"`
	Environment     map[string]string `yaml:"environment,omitempty"`
	EnvironmentFile []string          `yaml:"environment_file,omitempty"`
	Mounts          []Mount           `yaml:"volume,omitempty"`
	Network         []string          `yaml:"network,omitempty"`
	NetworkAlias    []string          `yaml:"network_alias,omitempty"`
	Exec            []string          `yaml:"exec,omitempty"`
	Entrypoint      []string          `yaml:"entrypoint,omitempty"`
	User            string            `yaml:"user,omitempty"`
	Group           string            `yaml:"group,omitempty"`
	WorkingDir      string            `yaml:"working_dir,omitempty"`
	RunInit         bool              `yaml:"run_init,omitempty"`
	ReadOnly        bool              `yaml:"read_only,omitempty"`
	HostName        string            `yaml:"host_name,omitempty"`
	Pull            string            `yaml:"pull,omitempty"`
	UserNS          string            `yaml:"userns,omitempty"`
	Tmpfs           []string          `yaml:"tmpfs,omitempty"`
	Sysctl          []string          `yaml:"sysctl,omitempty"`
	Mask            []string          `yaml:"mask,omitempty"`
	Unmask          []string          `yaml:"unmask,omitempty"`
	DNS             []string          `yaml:"dns,omitempty"`
	DNSOption       []string          `yaml:"dns_option,omitempty"`
	DNSSearch       []string          `yaml:"dns_search,omitempty"`
	ShmSize         string            `yaml:"shm_size,omitempty"`
	GIDMap          []string          `yaml:"gidmap,omitempty"`
	UIDMap          []string          `yaml:"uidmap,omitempty"`
	SubGIDMap       string            `yaml:"sub_gidmap,omitempty"`
	SubUIDMap       string            `yaml:"sub_uidmap,omitempty"`
	Ulimit          []string          `yaml:"ulimit,omitempty"`
	Secrets         []Secret          `yaml:"secrets,omitempty"`
	StopTimeout     int               `yaml:"stop_timeout,omitempty"`
	PodmanArgs      []string          `yaml:"podman_args,omitempty"`
}

// String renders the [Container] section.
func (c *Container) String() string {
	var b strings.Builder
	b.WriteString(sectionHeader(KindContainer))
	if c.Image != "" {
		b.WriteString(formatKeyValue("Image", c.Image))
	}
	if c.Rootfs != "" {
		b.WriteString(formatKeyValue("Rootfs", c.Rootfs))
	}
	if c.ContainerName != "" {
		b.WriteString(formatKeyValue("ContainerName", c.ContainerName))
	}
	if c.AutoUpdate != "" {
		b.WriteString(formatKeyValue("AutoUpdate", string(c.AutoUpdate)))
	}
	if c.Pod != "" {
		b.WriteString(formatKeyValue("Pod", c.Pod))
	}
	writeEach(&b, "Label", c.Label)
	writeEach(&b, "Annotation", c.Annotation)
	writeEach(&b, "PublishPort", c.PublishPort)

	// Environment variables render in key order so output is deterministic.
	envKeys := make([]string, 0, len(c.Environment))
	for k := range c.Environment {
		envKeys = append(envKeys, k)
	}
	sort.Strings(envKeys)
	for _, k := range envKeys {
		b.WriteString(formatKeyValue("Environment", k+"="+c.Environment[k]))
	}

	writeEach(&b, "EnvironmentFile", c.EnvironmentFile)
	for _, m := range c.Mounts {
		b.WriteString(formatKeyValue("Volume", m.String()))
	}
	writeEach(&b, "Network", c.Network)
	writeEach(&b, "NetworkAlias", c.NetworkAlias)
	if len(c.Exec) > 0 {
		b.WriteString(formatKeyValueSlice("Exec", c.Exec))
	}
	if len(c.Entrypoint) > 0 {
		b.WriteString(formatKeyValueSlice("Entrypoint", c.Entrypoint))
	}
	if c.User != "" {
		b.WriteString(formatKeyValue("User", c.User))
	}
	if c.Group != "" {
		b.WriteString(formatKeyValue("Group", c.Group))
	}
	if c.WorkingDir != "" {
		b.WriteString(formatKeyValue("WorkingDir", c.WorkingDir))
	}
	if c.RunInit {
		b.WriteString(formatBool("RunInit", true))
	}
	if c.ReadOnly {
		b.WriteString(formatBool("ReadOnly", true))
	}
	if c.HostName != "" {
		b.WriteString(formatKeyValue("HostName", c.HostName))
	}
	if c.Pull != "" {
		b.WriteString(formatKeyValue("Pull", c.Pull))
	}
	if c.UserNS != "" {
		b.WriteString(formatKeyValue("UserNS", c.UserNS))
	}
	writeEach(&b, "Tmpfs", c.Tmpfs)
	writeEach(&b, "Sysctl", c.Sysctl)
	writeEach(&b, "Mask", c.Mask)
	writeEach(&b, "Unmask", c.Unmask)
	writeEach(&b, "DNS", c.DNS)
	writeEach(&b, "DNSOption", c.DNSOption)
	writeEach(&b, "DNSSearch", c.DNSSearch)
	if c.ShmSize != "" {
		b.WriteString(formatKeyValue("ShmSize", c.ShmSize))
	}
	writeEach(&b, "GIDMap", c.GIDMap)
	writeEach(&b, "UIDMap", c.UIDMap)
	if c.SubGIDMap != "" {
		b.WriteString(formatKeyValue("SubGIDMap", c.SubGIDMap))
	}
	if c.SubUIDMap != "" {
		b.WriteString(formatKeyValue("SubUIDMap", c.SubUIDMap))
	}
	writeEach(&b, "Ulimit", c.Ulimit)
	for _, s := range c.Secrets {
		b.WriteString(formatKeyValue("Secret", s.String()))
	}
	if c.StopTimeout != 0 {
		b.WriteString(formatKeyValue("StopTimeout", strconv.Itoa(c.StopTimeout)))
	}
	if len(c.PodmanArgs) > 0 {
		b.WriteString(formatKeyValueSlice("PodmanArgs", c.PodmanArgs))
	}
	return b.String()
}

// pushArgs appends raw podman arguments, the escape hatch for options the
// target version's quadlet cannot express.
func (c *Container) pushArgs(args ...string) {
	c.PodmanArgs = append(c.PodmanArgs, args...)
}

// Downgrade rewrites options the given version's quadlet does not understand
// into equivalent PodmanArgs= flags, which every supported version accepts.
// The only option with no equivalent is Pod=: a container cannot join a pod
// unit on versions without pod support, so that case is an error.
func (c *Container) Downgrade(version PodmanVersion) error {
	if version < V5_0 {
		if c.Pod != "" {
			return &OptionError{Option: "Pod", Value: c.Pod, Supported: V5_0}
		}
		if len(c.Entrypoint) > 0 {
			c.pushArgs("--entrypoint", strings.Join(c.Entrypoint, " "))
			c.Entrypoint = nil
		}
		if c.StopTimeout != 0 {
			c.pushArgs("--stop-timeout", strconv.Itoa(c.StopTimeout))
			c.StopTimeout = 0
		}
	}

	if version < V4_8 {
		for _, m := range c.GIDMap {
			c.pushArgs("--gidmap", m)
		}
		c.GIDMap = nil
		for _, m := range c.UIDMap {
			c.pushArgs("--uidmap", m)
		}
		c.UIDMap = nil
		if c.SubGIDMap != "" {
			c.pushArgs("--subgidname", c.SubGIDMap)
			c.SubGIDMap = ""
		}
		if c.SubUIDMap != "" {
			c.pushArgs("--subuidname", c.SubUIDMap)
			c.SubUIDMap = ""
		}
	}

	if version < V4_7 {
		for _, dns := range c.DNS {
			c.pushArgs("--dns", dns)
		}
		c.DNS = nil
		for _, opt := range c.DNSOption {
			c.pushArgs("--dns-option", opt)
		}
		c.DNSOption = nil
		for _, search := range c.DNSSearch {
			c.pushArgs("--dns-search", search)
		}
		c.DNSSearch = nil
		if c.ShmSize != "" {
			c.pushArgs("--shm-size", c.ShmSize)
			c.ShmSize = ""
		}
	}

	if version < V4_6 {
		for _, sysctl := range c.Sysctl {
			c.pushArgs("--sysctl", sysctl)
		}
		c.Sysctl = nil
		if c.Pull != "" {
			c.pushArgs("--pull", c.Pull)
			c.Pull = ""
		}
		if c.WorkingDir != "" {
			c.pushArgs("--workdir", c.WorkingDir)
			c.WorkingDir = ""
		}
		if c.HostName != "" {
			c.pushArgs("--hostname", c.HostName)
			c.HostName = ""
		}
		for _, mask := range c.Mask {
			c.pushArgs("--security-opt", "mask="+mask)
		}
		c.Mask = nil
		for _, unmask := range c.Unmask {
			c.pushArgs("--security-opt", "unmask="+unmask)
		}
		c.Unmask = nil
	}

	if version < V4_5 {
		if c.AutoUpdate != "" {
			// Folds back into the label podman auto-update reads directly,
			// the inverse of ExtractAutoUpdateFromLabels.
			c.Label = append(c.Label, c.AutoUpdate.autoUpdateLabel())
			c.AutoUpdate = ""
		}
		if c.Rootfs != "" {
			c.pushArgs("--rootfs", c.Rootfs)
			c.Rootfs = ""
		}
		for _, tmpfs := range c.Tmpfs {
			c.pushArgs("--tmpfs", tmpfs)
		}
		c.Tmpfs = nil
		if c.UserNS != "" {
			c.pushArgs("--userns", c.UserNS)
			c.UserNS = ""
		}
		for _, ulimit := range c.Ulimit {
			c.pushArgs("--ulimit", ulimit)
		}
		c.Ulimit = nil
		for _, secret := range c.Secrets {
			c.pushArgs("--secret", secret.String())
		}
		c.Secrets = nil
	}

	return nil
}

// HostPaths yields handles to environment files and host-directory mount
// sources.
func (c *Container) HostPaths() iter.Seq[*string] {
	return func(yield func(*string) bool) {
		for i := range c.EnvironmentFile {
			if !yield(&c.EnvironmentFile[i]) {
				return
			}
		}
		for i := range c.Mounts {
			if !isHostPath(c.Mounts[i].Source) {
				continue
			}
			if !yield(&c.Mounts[i].Source) {
				return
			}
		}
	}
}

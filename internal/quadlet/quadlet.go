// Package quadlet models podman Quadlet unit files: the resource kinds they
// describe, their textual form, and the version compatibility rules that
// decide which options a target podman release can express.
package quadlet

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Downgrader restricts a value's configuration, in place, to what the given
// podman version supports.
type Downgrader interface {
	Downgrade(version PodmanVersion) error
}

// HostPathProvider exposes every host filesystem path embedded in a value as
// a mutable handle. The yielded pointers alias the value's own storage, so
// they must not be retained across later mutations of the value.
type HostPathProvider interface {
	HostPaths() iter.Seq[*string]
}

// ResourceKind identifies which concrete resource a Resource holds.
type ResourceKind int

// The closed set of quadlet resource kinds.
const (
	KindContainer ResourceKind = iota
	KindPod
	KindKube
	KindNetwork
	KindVolume
	KindImage
)

// String returns the kind as a lowercase string, which doubles as the
// generated unit file's extension.
func (k ResourceKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindPod:
		return "pod"
	case KindKube:
		return "kube"
	case KindNetwork:
		return "network"
	case KindVolume:
		return "volume"
	case KindImage:
		return "image"
	}
	return "unknown"
}

var sectionTitle = cases.Title(language.English)

// sectionHeader renders the INI section header for a kind, e.g. "[Container]".
func sectionHeader(k ResourceKind) string {
	return "[" + sectionTitle.String(k.String()) + "]\n"
}

// Resource is a tagged union over the concrete resource kinds. Exactly one
// payload is non-nil; all capability methods dispatch on the active kind.
type Resource struct {
	kind      ResourceKind
	container *Container
	pod       *Pod
	kube      *Kube
	network   *Network
	volume    *Volume
	image     *Image
}

// NewContainerResource wraps a container payload in a Resource.
func NewContainerResource(c *Container) Resource {
	return Resource{kind: KindContainer, container: c}
}

// NewPodResource wraps a pod payload in a Resource.
func NewPodResource(p *Pod) Resource {
	return Resource{kind: KindPod, pod: p}
}

// NewKubeResource wraps a kube payload in a Resource.
func NewKubeResource(k *Kube) Resource {
	return Resource{kind: KindKube, kube: k}
}

// NewNetworkResource wraps a network payload in a Resource.
func NewNetworkResource(n *Network) Resource {
	return Resource{kind: KindNetwork, network: n}
}

// NewVolumeResource wraps a volume payload in a Resource.
func NewVolumeResource(v *Volume) Resource {
	return Resource{kind: KindVolume, volume: v}
}

// NewImageResource wraps an image payload in a Resource.
func NewImageResource(i *Image) Resource {
	return Resource{kind: KindImage, image: i}
}

// Kind returns the active resource kind.
func (r Resource) Kind() ResourceKind { return r.kind }

// Container returns the container payload, or nil if another kind is active.
func (r Resource) Container() *Container { return r.container }

// Pod returns the pod payload, or nil if another kind is active.
func (r Resource) Pod() *Pod { return r.pod }

// Kube returns the kube payload, or nil if another kind is active.
func (r Resource) Kube() *Kube { return r.kube }

// Network returns the network payload, or nil if another kind is active.
func (r Resource) Network() *Network { return r.network }

// Volume returns the volume payload, or nil if another kind is active.
func (r Resource) Volume() *Volume { return r.volume }

// Image returns the image payload, or nil if another kind is active.
func (r Resource) Image() *Image { return r.image }

// Extension returns the extension for the generated quadlet file.
func (r Resource) Extension() string { return r.kind.String() }

// NameToService maps a quadlet file name (no extension) to the name of the
// service unit quadlet generates for it. Other tooling predicts
// cross-references between generated units from this mapping.
func (r Resource) NameToService(name string) string {
	var service string
	switch r.kind {
	case KindContainer, KindKube:
		service = name
	case KindPod:
		service = name + "-pod"
	case KindNetwork:
		service = name + "-network"
	case KindVolume:
		service = name + "-volume"
	case KindImage:
		service = name + "-image"
	}
	return service + ".service"
}

// Downgrade restricts the resource to options the given podman version
// supports. Kinds that post-date the version are rejected with a KindError
// before the payload is consulted.
func (r Resource) Downgrade(version PodmanVersion) error {
	switch {
	case r.kind == KindPod && version < V5_0:
		return &KindError{Kind: KindPod, Supported: V5_0}
	case r.kind == KindImage && version < V4_8:
		return &KindError{Kind: KindImage, Supported: V4_8}
	}

	switch r.kind {
	case KindContainer:
		return r.container.Downgrade(version)
	case KindPod:
		return r.pod.Downgrade(version)
	case KindKube:
		return r.kube.Downgrade(version)
	case KindNetwork:
		return r.network.Downgrade(version)
	case KindVolume:
		return r.volume.Downgrade(version)
	case KindImage:
		return r.image.Downgrade(version)
	}
	return nil
}

// HostPaths yields mutable handles to the active payload's host paths.
func (r Resource) HostPaths() iter.Seq[*string] {
	switch r.kind {
	case KindContainer:
		return r.container.HostPaths()
	case KindPod:
		return r.pod.HostPaths()
	case KindKube:
		return r.kube.HostPaths()
	case KindNetwork:
		return r.network.HostPaths()
	case KindVolume:
		return r.volume.HostPaths()
	case KindImage:
		return r.image.HostPaths()
	}
	return noPaths
}

// String renders the active payload as its INI section.
func (r Resource) String() string {
	switch r.kind {
	case KindContainer:
		return r.container.String()
	case KindPod:
		return r.pod.String()
	case KindKube:
		return r.kube.String()
	case KindNetwork:
		return r.network.String()
	case KindVolume:
		return r.volume.String()
	case KindImage:
		return r.image.String()
	}
	return ""
}

// File is a complete quadlet unit file: a named resource plus optional
// systemd metadata, global podman options, service overrides, and install
// directives. A File is built once, optionally downgraded, rendered, and
// discarded.
type File struct {
	Name     string
	Unit     *UnitConfig
	Resource Resource
	Globals  Globals
	Service  *ServiceConfig
	Install  *InstallConfig
}

// FileName returns the quadlet file name including its extension.
func (f *File) FileName() string {
	return f.Name + "." + f.Resource.Extension()
}

// ServiceName returns the name of the service unit quadlet generates for
// this file.
func (f *File) ServiceName() string {
	return f.Resource.NameToService(f.Name)
}

// Downgrade restricts the file to options the given podman version supports.
//
// This is a one-way transformation: a second call with a higher version does
// not restore options a previous call stripped. On error the mutations
// applied before the failing option remain in place; callers that need
// all-or-nothing semantics should downgrade a copy.
func (f *File) Downgrade(version PodmanVersion) error {
	if err := f.Resource.Downgrade(version); err != nil {
		return err
	}
	return f.Globals.Downgrade(version)
}

// HostPaths yields the resource's host paths followed by the globals' host
// paths.
func (f *File) HostPaths() iter.Seq[*string] {
	return func(yield func(*string) bool) {
		for p := range f.Resource.HostPaths() {
			if !yield(p) {
				return
			}
		}
		for p := range f.Globals.HostPaths() {
			if !yield(p) {
				return
			}
		}
	}
}

// String renders the file in the order the quadlet generator expects: unit
// metadata, the resource section with global options appended into it, then
// blank-line-separated service and install blocks.
func (f *File) String() string {
	var b strings.Builder
	if f.Unit != nil {
		b.WriteString(f.Unit.String())
		b.WriteString("\n")
	}
	b.WriteString(f.Resource.String())
	b.WriteString(f.Globals.String())
	if f.Service != nil {
		b.WriteString("\n")
		b.WriteString(f.Service.String())
	}
	if f.Install != nil {
		b.WriteString("\n")
		b.WriteString(f.Install.String())
	}
	return b.String()
}

// Compile-time checks that every payload implements the shared contracts.
var (
	_ Downgrader = (*Container)(nil)
	_ Downgrader = (*Pod)(nil)
	_ Downgrader = (*Kube)(nil)
	_ Downgrader = (*Network)(nil)
	_ Downgrader = (*Volume)(nil)
	_ Downgrader = (*Image)(nil)
	_ Downgrader = (*Globals)(nil)
	_ Downgrader = (*File)(nil)

	_ HostPathProvider = (*Container)(nil)
	_ HostPathProvider = (*Pod)(nil)
	_ HostPathProvider = (*Kube)(nil)
	_ HostPathProvider = (*Network)(nil)
	_ HostPathProvider = (*Volume)(nil)
	_ HostPathProvider = (*Image)(nil)
	_ HostPathProvider = (*Globals)(nil)
	_ HostPathProvider = (*File)(nil)
)

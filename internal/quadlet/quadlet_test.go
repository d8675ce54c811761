package quadlet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResources() map[ResourceKind]Resource {
	return map[ResourceKind]Resource{
		KindContainer: NewContainerResource(&Container{Image: "docker.io/library/nginx:latest"}),
		KindPod:       NewPodResource(&Pod{}),
		KindKube:      NewKubeResource(&Kube{Yaml: "/etc/kube/app.yaml"}),
		KindNetwork:   NewNetworkResource(&Network{}),
		KindVolume:    NewVolumeResource(&Volume{}),
		KindImage:     NewImageResource(&Image{Image: "quay.io/podman/hello:latest"}),
	}
}

func TestNameToService(t *testing.T) {
	want := map[ResourceKind]string{
		KindContainer: "web.service",
		KindKube:      "web.service",
		KindPod:       "web-pod.service",
		KindNetwork:   "web-network.service",
		KindVolume:    "web-volume.service",
		KindImage:     "web-image.service",
	}
	for kind, resource := range sampleResources() {
		assert.Equal(t, want[kind], resource.NameToService("web"), "kind %s", kind)
	}
}

func TestExtension(t *testing.T) {
	for kind, resource := range sampleResources() {
		assert.Equal(t, kind.String(), resource.Extension())
	}
}

func TestResourceKindStrings(t *testing.T) {
	want := map[ResourceKind]string{
		KindContainer: "container",
		KindPod:       "pod",
		KindKube:      "kube",
		KindNetwork:   "network",
		KindVolume:    "volume",
		KindImage:     "image",
	}
	for kind, s := range want {
		assert.Equal(t, s, kind.String())
	}
}

func TestResourceRendersOwnSection(t *testing.T) {
	headers := map[ResourceKind]string{
		KindContainer: "[Container]\n",
		KindPod:       "[Pod]\n",
		KindKube:      "[Kube]\n",
		KindNetwork:   "[Network]\n",
		KindVolume:    "[Volume]\n",
		KindImage:     "[Image]\n",
	}
	for kind, resource := range sampleResources() {
		assert.True(t, strings.HasPrefix(resource.String(), headers[kind]),
			"kind %s renders %q", kind, resource.String())
	}
}

func TestFileRenderOrdering(t *testing.T) {
	file := File{
		Name: "web",
		Unit: &UnitConfig{
			Description: "Web frontend",
			After:       []string{"network-online.target"},
		},
		Resource: NewContainerResource(&Container{
			Image: "docker.io/library/nginx:latest",
			Label: []string{"app=web"},
		}),
		Globals: Globals{
			ContainersConfModule: []string{"/etc/containers/custom.conf"},
		},
		Service: &ServiceConfig{Restart: "always"},
		Install: &InstallConfig{WantedBy: []string{"default.target"}},
	}

	want := `[Unit]
Description=Web frontend
After=network-online.target

[Container]
Image=docker.io/library/nginx:latest
Label=app=web
ContainersConfModule=/etc/containers/custom.conf

[Service]
Restart=always

[Install]
WantedBy=default.target
`
	assert.Equal(t, want, file.String())
}

func TestFileRenderWithoutOptionalBlocks(t *testing.T) {
	file := File{
		Name:     "cache",
		Resource: NewVolumeResource(&Volume{Device: "/srv/cache"}),
	}

	want := "[Volume]\nDevice=/srv/cache\n"
	assert.Equal(t, want, file.String())
	assert.Equal(t, "cache.volume", file.FileName())
	assert.Equal(t, "cache-volume.service", file.ServiceName())
}

func TestFileRenderIsDeterministic(t *testing.T) {
	build := func() *File {
		return &File{
			Name: "app",
			Resource: NewContainerResource(&Container{
				Image: "docker.io/library/redis:7",
				Environment: map[string]string{
					"B": "2",
					"A": "1",
					"C": "3",
				},
			}),
		}
	}
	assert.Equal(t, build().String(), build().String())
	assert.Contains(t, build().String(),
		"Environment=A=1\nEnvironment=B=2\nEnvironment=C=3\n")
}

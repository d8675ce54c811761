package dependency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananthb/podlet/internal/quadlet"
)

func fileNames(files []quadlet.File) []string {
	names := make([]string, 0, len(files))
	for i := range files {
		names = append(names, files[i].FileName())
	}
	return names
}

func TestWriteOrderPutsReferencedUnitsFirst(t *testing.T) {
	files := []quadlet.File{
		{
			Name: "web",
			Resource: quadlet.NewContainerResource(&quadlet.Container{
				Image:   "docker.io/library/nginx:latest",
				Network: []string{"frontend.network"},
				Mounts:  []quadlet.Mount{{Source: "webdata.volume", Destination: "/data"}},
			}),
		},
		{Name: "frontend", Resource: quadlet.NewNetworkResource(&quadlet.Network{})},
		{Name: "webdata", Resource: quadlet.NewVolumeResource(&quadlet.Volume{})},
	}

	sorted, err := WriteOrder(files)
	require.NoError(t, err)

	names := fileNames(sorted)
	assert.Equal(t, "web.container", names[len(names)-1])
	assert.ElementsMatch(t, []string{"frontend.network", "webdata.volume"}, names[:2])
}

func TestWriteOrderChainsThroughPodsAndImages(t *testing.T) {
	files := []quadlet.File{
		{
			Name: "app",
			Resource: quadlet.NewContainerResource(&quadlet.Container{
				Image: "app.image",
				Pod:   "infra.pod",
			}),
		},
		{
			Name: "infra",
			Resource: quadlet.NewPodResource(&quadlet.Pod{
				Network: []string{"backend.network"},
			}),
		},
		{Name: "backend", Resource: quadlet.NewNetworkResource(&quadlet.Network{})},
		{Name: "app", Resource: quadlet.NewImageResource(&quadlet.Image{Image: "quay.io/app:1"})},
	}

	sorted, err := WriteOrder(files)
	require.NoError(t, err)

	position := make(map[string]int)
	for i, name := range fileNames(sorted) {
		position[name] = i
	}
	assert.Less(t, position["backend.network"], position["infra.pod"])
	assert.Less(t, position["infra.pod"], position["app.container"])
	assert.Less(t, position["app.image"], position["app.container"])
}

func TestWriteOrderIgnoresExternalReferences(t *testing.T) {
	files := []quadlet.File{
		{
			Name: "web",
			Resource: quadlet.NewContainerResource(&quadlet.Container{
				Image:   "docker.io/library/nginx:latest",
				Network: []string{"external.network"},
			}),
		},
	}

	sorted, err := WriteOrder(files)
	require.NoError(t, err)
	assert.Equal(t, []string{"web.container"}, fileNames(sorted))
}

func TestWriteOrderIsStable(t *testing.T) {
	files := []quadlet.File{
		{Name: "c", Resource: quadlet.NewNetworkResource(&quadlet.Network{})},
		{Name: "a", Resource: quadlet.NewNetworkResource(&quadlet.Network{})},
		{Name: "b", Resource: quadlet.NewNetworkResource(&quadlet.Network{})},
	}

	sorted, err := WriteOrder(files)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.network", "b.network", "c.network"}, fileNames(sorted))
}

func TestWriteOrderRejectsDuplicates(t *testing.T) {
	files := []quadlet.File{
		{Name: "web", Resource: quadlet.NewNetworkResource(&quadlet.Network{})},
		{Name: "web", Resource: quadlet.NewNetworkResource(&quadlet.Network{})},
	}

	_, err := WriteOrder(files)
	assert.Error(t, err)
}

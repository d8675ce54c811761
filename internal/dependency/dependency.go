// Package dependency orders generated quadlet files so that units are
// written after the units they reference.
package dependency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dominikbraun/graph"

	"github.com/ananthb/podlet/internal/quadlet"
)

// WriteOrder returns the files sorted so every unit a file references
// (networks, volumes, pods, images) comes before it. References to units
// outside the given set are ignored; ties break on file name so the order is
// stable. Reference cycles are an error.
func WriteOrder(files []quadlet.File) ([]quadlet.File, error) {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	byName := make(map[string]int, len(files))
	for i := range files {
		name := files[i].FileName()
		if _, exists := byName[name]; exists {
			return nil, fmt.Errorf("duplicate unit file %q", name)
		}
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("ordering units: %w", err)
		}
		byName[name] = i
	}

	for i := range files {
		name := files[i].FileName()
		for _, ref := range references(&files[i]) {
			if _, known := byName[ref]; !known || ref == name {
				continue
			}
			err := g.AddEdge(ref, name)
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("ordering units: %w", err)
			}
		}
	}

	order, err := graph.StableTopologicalSort(g, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("ordering units: %w", err)
	}

	sorted := make([]quadlet.File, 0, len(files))
	for _, name := range order {
		sorted = append(sorted, files[byName[name]])
	}
	return sorted, nil
}

// references collects the unit files a file's resource points at.
func references(f *quadlet.File) []string {
	var refs []string
	unitRef := func(value string, extensions ...string) {
		for _, ext := range extensions {
			if strings.HasSuffix(value, "."+ext) {
				refs = append(refs, value)
				return
			}
		}
	}

	switch f.Resource.Kind() {
	case quadlet.KindContainer:
		container := f.Resource.Container()
		unitRef(container.Image, "image")
		unitRef(container.Pod, "pod")
		for _, network := range container.Network {
			unitRef(network, "network")
		}
		for _, mount := range container.Mounts {
			unitRef(mount.Source, "volume", "image")
		}
	case quadlet.KindPod:
		pod := f.Resource.Pod()
		for _, network := range pod.Network {
			unitRef(network, "network")
		}
		for _, mount := range pod.Mounts {
			unitRef(mount.Source, "volume")
		}
	case quadlet.KindKube:
		kube := f.Resource.Kube()
		for _, network := range kube.Network {
			unitRef(network, "network")
		}
	case quadlet.KindVolume:
		unitRef(f.Resource.Volume().Image, "image")
	}
	return refs
}

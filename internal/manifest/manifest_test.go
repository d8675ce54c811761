package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananthb/podlet/internal/quadlet"
)

const sampleManifest = `
units:
  - name: web
    unit:
      description: Web frontend
      after: [network-online.target]
    container:
      image: docker.io/library/nginx:latest
      label:
        - app=web
        - io.containers.autoupdate=registry
      publish_port: ["8080:80"]
      volume:
        - webdata.volume:/usr/share/nginx/html
        - /etc/web/conf.d:/etc/nginx/conf.d:ro
      network: [frontend.network]
    service:
      restart: always
    install:
      wanted_by: [default.target]
  - name: frontend
    network:
      driver: bridge
      subnet: [10.89.0.0/24]
  - name: webdata
    volume:
      device: /srv/web
      type: bind
`

func TestParseManifest(t *testing.T) {
	files, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	require.Len(t, files, 3)

	web := files[0]
	assert.Equal(t, "web", web.Name)
	assert.Equal(t, quadlet.KindContainer, web.Resource.Kind())
	assert.Equal(t, "web.container", web.FileName())
	assert.Equal(t, "web.service", web.ServiceName())
	require.NotNil(t, web.Unit)
	assert.Equal(t, "Web frontend", web.Unit.Description)

	container := web.Resource.Container()
	require.NotNil(t, container)
	assert.Equal(t, []quadlet.Mount{
		{Source: "webdata.volume", Destination: "/usr/share/nginx/html"},
		{Source: "/etc/web/conf.d", Destination: "/etc/nginx/conf.d", Options: "ro"},
	}, container.Mounts)

	assert.Equal(t, quadlet.KindNetwork, files[1].Resource.Kind())
	assert.Equal(t, quadlet.KindVolume, files[2].Resource.Kind())
}

func TestParseManifestExtractsAutoUpdateLabel(t *testing.T) {
	files, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	container := files[0].Resource.Container()
	assert.Equal(t, quadlet.AutoUpdateRegistry, container.AutoUpdate)
	assert.Equal(t, []string{"app=web"}, container.Label)
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"missing name", "units:\n  - container:\n      image: x\n"},
		{"no resource", "units:\n  - name: x\n"},
		{"two resources", "units:\n  - name: x\n    container:\n      image: a\n    volume:\n      device: /x\n"},
		{"invalid yaml", "units: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

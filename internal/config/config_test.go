package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderRoundTrip(t *testing.T) {
	provider := NewDefaultConfigProvider()
	assert.Nil(t, provider.GetConfig())

	cfg := &Settings{
		QuadletDir:    "/tmp/systemd",
		PodmanVersion: "4.8",
		Verbose:       true,
	}
	provider.SetConfig(cfg)
	assert.Equal(t, cfg, provider.GetConfig())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "/etc/containers/systemd", DefaultQuadletDir)
	assert.Equal(t, "latest", DefaultPodmanVersion)
	assert.False(t, DefaultUserMode)
}

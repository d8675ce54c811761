package quadlet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVersions = []PodmanVersion{V4_4, V4_5, V4_6, V4_7, V4_8, V5_0}

func TestDowngradeBaselineOptionsAlwaysSucceed(t *testing.T) {
	for _, version := range allVersions {
		file := File{
			Name: "web",
			Resource: NewContainerResource(&Container{
				Image:       "docker.io/library/nginx:latest",
				Label:       []string{"app=web"},
				PublishPort: []string{"8080:80"},
			}),
		}
		assert.NoError(t, file.Downgrade(version), "version %s", version)
	}
}

func TestDowngradeKindGates(t *testing.T) {
	tests := []struct {
		name      string
		resource  func() Resource
		supported PodmanVersion
	}{
		{"pod", func() Resource { return NewPodResource(&Pod{}) }, V5_0},
		{"image", func() Resource { return NewImageResource(&Image{Image: "quay.io/x:1"}) }, V4_8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, version := range allVersions {
				err := tt.resource().Downgrade(version)
				if version >= tt.supported {
					assert.NoError(t, err, "version %s", version)
					continue
				}
				var kindErr *KindError
				require.ErrorAs(t, err, &kindErr, "version %s", version)
				assert.Equal(t, tt.supported, kindErr.Supported)
			}
		})
	}
}

func TestDowngradeOptionErrorNamesOptionAndVersion(t *testing.T) {
	network := NewNetworkResource(&Network{DNS: []string{"192.168.55.1"}})

	err := network.Downgrade(V4_6)

	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "DNS", optErr.Option)
	assert.Equal(t, "192.168.55.1", optErr.Value)
	assert.Equal(t, V4_7, optErr.Supported)
	assert.EqualError(t, err,
		"quadlet option `DNS=192.168.55.1` was not supported until podman v4.7")
}

func TestDowngradeVolumeOptionGates(t *testing.T) {
	tests := []struct {
		name      string
		volume    Volume
		version   PodmanVersion
		option    string
		supported PodmanVersion
	}{
		{"image below 4.8", Volume{Image: "quay.io/x:1"}, V4_7, "Image", V4_8},
		{"driver below 4.6", Volume{Driver: "image"}, V4_5, "Driver", V4_6},
		{"podman args below 4.5", Volume{PodmanArgs: []string{"--log-level=debug"}}, V4_4, "PodmanArgs", V4_5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volume := tt.volume
			err := volume.Downgrade(tt.version)
			var optErr *OptionError
			require.ErrorAs(t, err, &optErr)
			assert.Equal(t, tt.option, optErr.Option)
			assert.Equal(t, tt.supported, optErr.Supported)
		})
	}
}

func TestDowngradeKubeOptionGates(t *testing.T) {
	kube := Kube{Yaml: "/etc/kube/app.yaml", KubeDownForce: true}
	err := kube.Downgrade(V4_6)
	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "KubeDownForce", optErr.Option)
	assert.Equal(t, V4_7, optErr.Supported)

	kube = Kube{Yaml: "/etc/kube/app.yaml", AutoUpdate: []string{"registry"}}
	err = kube.Downgrade(V4_5)
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "AutoUpdate", optErr.Option)
	assert.Equal(t, V4_6, optErr.Supported)
}

func TestDowngradeGlobalsGate(t *testing.T) {
	globals := Globals{GlobalArgs: []string{"--log-level=debug"}}
	err := globals.Downgrade(V4_7)
	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "GlobalArgs", optErr.Option)
	assert.Equal(t, V4_8, optErr.Supported)

	assert.NoError(t, globals.Downgrade(V4_8))
}

func TestContainerDowngradeConvertsGatedOptionsToPodmanArgs(t *testing.T) {
	container := Container{
		Image:      "docker.io/library/nginx:latest",
		WorkingDir: "/srv",
		Sysctl:     []string{"net.ipv4.ip_forward=1"},
		UserNS:     "keep-id",
		DNS:        []string{"1.1.1.1"},
	}

	require.NoError(t, container.Downgrade(V4_4))

	assert.Empty(t, container.WorkingDir)
	assert.Empty(t, container.Sysctl)
	assert.Empty(t, container.UserNS)
	assert.Empty(t, container.DNS)
	assert.Equal(t, []string{
		"--dns", "1.1.1.1",
		"--sysctl", "net.ipv4.ip_forward=1",
		"--workdir", "/srv",
		"--userns", "keep-id",
	}, container.PodmanArgs)
}

func TestContainerDowngradeFoldsAutoUpdateIntoLabel(t *testing.T) {
	container := Container{
		Image:      "docker.io/library/nginx:latest",
		AutoUpdate: AutoUpdateRegistry,
	}

	require.NoError(t, container.Downgrade(V4_4))

	assert.Empty(t, container.AutoUpdate)
	assert.Equal(t, []string{"io.containers.autoupdate=registry"}, container.Label)
}

func TestContainerDowngradeRejectsPodReference(t *testing.T) {
	container := Container{Image: "docker.io/library/nginx:latest", Pod: "infra.pod"}

	err := container.Downgrade(V4_8)

	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "Pod", optErr.Option)
	assert.Equal(t, "infra.pod", optErr.Value)
	assert.Equal(t, V5_0, optErr.Supported)

	// Supported from 5.0 on.
	container = Container{Image: "docker.io/library/nginx:latest", Pod: "infra.pod"}
	assert.NoError(t, container.Downgrade(V5_0))
}

func TestDowngradeIsOneWay(t *testing.T) {
	container := Container{
		Image:  "docker.io/library/nginx:latest",
		Pull:   "newer",
		Sysctl: []string{"net.ipv4.ip_forward=1"},
	}
	require.NoError(t, container.Downgrade(V4_5))
	stripped := container.String()

	// Downgrading again with a newer version must not restore anything.
	require.NoError(t, container.Downgrade(Latest))
	assert.Equal(t, stripped, container.String())
}

func TestDowngradeStepwiseMatchesDirect(t *testing.T) {
	build := func() Container {
		return Container{
			Image:      "docker.io/library/nginx:latest",
			HostName:   "frontend",
			DNS:        []string{"1.1.1.1"},
			GIDMap:     []string{"0:10000:10"},
			Tmpfs:      []string{"/tmp"},
			WorkingDir: "/srv",
		}
	}

	direct := build()
	require.NoError(t, direct.Downgrade(V4_4))

	stepwise := build()
	for _, version := range []PodmanVersion{V4_8, V4_7, V4_6, V4_5, V4_4} {
		require.NoError(t, stepwise.Downgrade(version))
	}

	assert.Equal(t, direct.String(), stepwise.String())
}

func TestDowngradeIsIdempotent(t *testing.T) {
	container := Container{Image: "docker.io/library/nginx:latest", Pull: "never"}
	require.NoError(t, container.Downgrade(V4_4))
	once := container.String()
	require.NoError(t, container.Downgrade(V4_4))
	assert.Equal(t, once, container.String())
}

func TestFileDowngradeReportsFirstIncompatibility(t *testing.T) {
	file := File{
		Name:     "web",
		Resource: NewContainerResource(&Container{Image: "docker.io/library/nginx:latest"}),
		Globals:  Globals{GlobalArgs: []string{"--log-level=debug"}},
	}

	err := file.Downgrade(V4_4)

	var optErr *OptionError
	require.ErrorAs(t, err, &optErr)
	assert.Equal(t, "GlobalArgs", optErr.Option)
}

// Package config provides configuration management for podlet.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers.
type Provider interface {
	// GetConfig returns the current application configuration.
	GetConfig() *Settings
	// SetConfig sets the application configuration.
	SetConfig(c *Settings)
	// InitConfig initializes the application configuration.
	InitConfig() *Settings
	// SetConfigFilePath sets the configuration file path.
	SetConfigFilePath(p string)
}

// Default configuration values.
const (
	DefaultQuadletDir     = "/etc/containers/systemd"
	DefaultUserQuadletDir = "$HOME/.config/containers/systemd"
	DefaultPodmanVersion  = "latest"
	DefaultUserMode       = false
	DefaultVerbose        = false
)

// Settings represents the configuration for podlet: where generated unit
// files go, which podman version to target, and verbosity.
type Settings struct {
	QuadletDir    string `yaml:"quadletDir"`
	PodmanVersion string `yaml:"podmanVersion"`
	UserMode      bool   `yaml:"userMode"`
	Verbose       bool   `yaml:"verbose"`
}

type defaultConfigProvider struct {
	cfg *Settings
}

// NewDefaultConfigProvider creates a new default config provider.
func NewDefaultConfigProvider() Provider {
	return &defaultConfigProvider{}
}

func (p *defaultConfigProvider) SetConfig(c *Settings) {
	p.cfg = c
}

func (p *defaultConfigProvider) GetConfig() *Settings {
	return p.cfg
}

func (p *defaultConfigProvider) SetConfigFilePath(path string) {
	viper.SetConfigFile(path)
}

func (p *defaultConfigProvider) InitConfig() *Settings {
	cfg := &Settings{
		QuadletDir:    DefaultQuadletDir,
		PodmanVersion: DefaultPodmanVersion,
		UserMode:      DefaultUserMode,
		Verbose:       DefaultVerbose,
	}

	viper.SetDefault("quadletDir", DefaultQuadletDir)
	viper.SetDefault("podmanVersion", DefaultPodmanVersion)
	viper.SetDefault("userMode", DefaultUserMode)
	viper.SetDefault("verbose", DefaultVerbose)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(os.ExpandEnv("$HOME/.config/podlet"))
	viper.AddConfigPath("/etc/opt/podlet")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		panic(err)
	}

	if cfg.UserMode && cfg.QuadletDir == DefaultQuadletDir {
		cfg.QuadletDir = os.ExpandEnv(DefaultUserQuadletDir)
	}

	p.cfg = cfg
	return cfg
}

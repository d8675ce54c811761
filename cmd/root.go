// Package cmd provides the command line interface for podlet
/*
Copyright © 2025 Ananth Bhaskararaman

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ananthb/podlet/internal/config"
	"github.com/ananthb/podlet/internal/log"
)

// RootCommand represents the root command for the podlet CLI.
type RootCommand struct{}

var (
	cfg            *config.Settings
	configProvider config.Provider
	logger         log.Logger

	userMode       bool
	verbose        bool
	configFilePath string
	quadletDir     string
	podmanVersion  string
)

// GetCobraCommand returns the cobra root command for the podlet CLI.
func (c *RootCommand) GetCobraCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podlet",
		Short: "Podlet generates podman Quadlet unit files from declarative manifests.",
		Long: `Podlet generates podman Quadlet unit files from declarative manifests.
It renders containers, pods, kube plays, networks, volumes, and images into
systemd unit files and can downgrade them for older podman versions.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configProvider = config.NewDefaultConfigProvider()
			if configFilePath != "" {
				configProvider.SetConfigFilePath(configFilePath)
			}
			cfg = configProvider.InitConfig()

			if verbose {
				fmt.Printf("%s using config: %s\n\n", cmd.Root().Use, viper.GetViper().ConfigFileUsed())
				cfg.Verbose = verbose
			}

			if userMode {
				cfg.UserMode = userMode
				cfg.QuadletDir = os.ExpandEnv(config.DefaultUserQuadletDir)
			}

			if quadletDir != "" {
				cfg.QuadletDir = quadletDir
			}

			if podmanVersion != "" {
				cfg.PodmanVersion = podmanVersion
			}

			logger = log.NewLogger(cfg.Verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&userMode, "user", "u", false, "Generate units for the user systemd instance")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&quadletDir, "quadlet-dir", "", "Path to the quadlet directory")
	rootCmd.PersistentFlags().StringVarP(&podmanVersion, "podman-version", "p", "", "Podman version to target (e.g. 4.4, 5.0, latest)")

	rootCmd.AddCommand(
		(&GenerateCommand{}).GetCobraCommand(),
		(&ListCommand{}).GetCobraCommand(),
		(&VersionCommand{}).GetCobraCommand(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := (&RootCommand{}).GetCobraCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

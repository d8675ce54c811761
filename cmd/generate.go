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

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ananthb/podlet/internal/dependency"
	"github.com/ananthb/podlet/internal/fs"
	"github.com/ananthb/podlet/internal/manifest"
	"github.com/ananthb/podlet/internal/parse"
	"github.com/ananthb/podlet/internal/quadlet"
)

// GenerateCommand represents the generate command.
type GenerateCommand struct{}

var dryRun bool

// GetCobraCommand returns the cobra command for generating quadlet unit files.
func (c *GenerateCommand) GetCobraCommand() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [manifest...]",
		Short: "Generate quadlet unit files from manifests",
		Long: `Generate quadlet unit files from one or more YAML manifests.
Units are downgraded to the target podman version and written to the
quadlet directory in dependency order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			files, err := loadManifests(args)
			if err != nil {
				return err
			}

			version, err := quadlet.ParsePodmanVersion(cfg.PodmanVersion)
			if err != nil {
				return fmt.Errorf("invalid podman version %q: %w", cfg.PodmanVersion, err)
			}

			for i := range files {
				if err := files[i].Downgrade(version); err != nil {
					return fmt.Errorf("downgrading %s to podman v%s: %w", files[i].FileName(), version, err)
				}
			}

			sorted, err := dependency.WriteOrder(files)
			if err != nil {
				return err
			}

			if dryRun {
				return printUnits(sorted)
			}
			return writeUnits(sorted)
		},
	}

	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print generated units to stdout instead of writing files")

	return generateCmd
}

func loadManifests(paths []string) ([]quadlet.File, error) {
	var files []quadlet.File
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // Manifest paths come from the command line
		if err != nil {
			return nil, fmt.Errorf("reading manifest %s: %w", path, err)
		}
		parsed, err := manifest.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
		}
		files = append(files, parsed...)
	}
	return files, nil
}

func printUnits(files []quadlet.File) error {
	nameFmt := color.New(color.FgGreen, color.Bold).SprintfFunc()
	for i := range files {
		text := files[i].String()
		if err := parse.CheckSyntax(text); err != nil {
			return fmt.Errorf("generated unit %s is not valid: %w", files[i].FileName(), err)
		}
		fmt.Printf("# %s\n%s\n", nameFmt("%s", files[i].FileName()), text)
	}
	return nil
}

func writeUnits(files []quadlet.File) error {
	fsService := fs.NewServiceWithLogger(configProvider, logger)
	for i := range files {
		text := files[i].String()
		if err := parse.CheckSyntax(text); err != nil {
			return fmt.Errorf("generated unit %s is not valid: %w", files[i].FileName(), err)
		}

		path := fsService.GetUnitFilePath(files[i].Name, files[i].Resource.Extension())
		if !fsService.HasUnitChanged(path, text) {
			logger.Debug("Unit up to date", "path", path)
			continue
		}
		if err := fsService.WriteUnitFile(path, text); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

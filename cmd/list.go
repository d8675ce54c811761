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
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/ananthb/podlet/internal/dependency"
)

// ListCommand represents the list command.
type ListCommand struct{}

// GetCobraCommand returns the cobra command for listing units defined in manifests.
func (c *ListCommand) GetCobraCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list [manifest...]",
		Short: "List units defined in manifests",
		Long:  `List the quadlet units one or more YAML manifests define, in write order.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			files, err := loadManifests(args)
			if err != nil {
				return err
			}

			sorted, err := dependency.WriteOrder(files)
			if err != nil {
				return err
			}

			headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
			columnFmt := color.New(color.FgYellow).SprintfFunc()
			tbl := table.New("Name", "Kind", "File", "Service")
			tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

			for i := range sorted {
				tbl.AddRow(sorted[i].Name, sorted[i].Resource.Kind(), sorted[i].FileName(), sorted[i].ServiceName())
			}

			tbl.Print()
			return nil
		},
	}

	return listCmd
}

package main

import (
	"fmt"

	"github.com/philipparndt/bodysize/pkg/analysis"
	"github.com/spf13/cobra"
)

var fixturesBody string

var fixturesCmd = &cobra.Command{
	Use:   "fixtures [file]",
	Short: "List the extents of every fixture of a body",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixtures,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)

	fixturesCmd.Flags().StringVarP(&fixturesBody, "body", "b", "", "Body to inspect")
	fixturesCmd.MarkFlagRequired("body")
}

func runFixtures(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	report, err := loadReport(filename, 0, false)
	if err != nil {
		return err
	}

	body, ok := analysis.FindBody(report, fixturesBody)
	if !ok {
		return fmt.Errorf("body %q not found in %s", fixturesBody, filename)
	}

	fmt.Fprintf(out, "Fixtures of %s\n", body.Name)
	fmt.Fprintln(out, "====================")

	if len(body.Fixtures) == 0 {
		fmt.Fprintln(out, "Body has no fixtures.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-8s %-50s %-25s\n", "Index", "Shape", "Bounds", "Size")
	fmt.Fprintln(out, "-------------------------------------------------------------------------------------------")
	for _, f := range body.Fixtures {
		fmt.Fprintf(out, "%-6d %-8s %-50s %-25s\n",
			f.Index,
			f.Kind,
			analysis.FormatBounds(f.Bounds),
			analysis.FormatVector(f.Size))
	}

	fmt.Fprintf(out, "\nBody size: %s\n", analysis.FormatVector(body.Size))
	return nil
}

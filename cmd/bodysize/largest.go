package main

import (
	"fmt"

	"github.com/philipparndt/bodysize/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	largestCount    int
	largestSmallest bool
)

var largestCmd = &cobra.Command{
	Use:   "largest [file]",
	Short: "Rank bodies by bounding box area",
	Args:  cobra.ExactArgs(1),
	RunE:  runLargest,
}

func init() {
	rootCmd.AddCommand(largestCmd)

	largestCmd.Flags().IntVarP(&largestCount, "count", "n", 10, "Number of bodies to display")
	largestCmd.Flags().BoolVarP(&largestSmallest, "smallest", "s", false, "Show the smallest bodies instead")
}

func runLargest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if largestCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", largestCount)
	}

	report, err := loadReport(args[0], 0, false)
	if err != nil {
		return err
	}

	var bodies []analysis.BodyResult
	var title string
	if largestSmallest {
		bodies = analysis.FindSmallestBodies(report, largestCount)
		title = fmt.Sprintf("Top %d Smallest Bodies", len(bodies))
	} else {
		bodies = analysis.FindLargestBodies(report, largestCount)
		title = fmt.Sprintf("Top %d Largest Bodies", len(bodies))
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")

	if len(bodies) == 0 {
		fmt.Fprintln(out, "Scene has no bodies.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-20s %-15s %-15s %-15s\n", "Rank", "Body", "Width", "Height", "Area")
	fmt.Fprintln(out, "-------------------------------------------------------------------------")
	for i, body := range bodies {
		fmt.Fprintf(out, "%-6d %-20s %-15.6f %-15.6f %-15.6f\n",
			i+1, body.Name, body.Size.X, body.Size.Y, body.Size.Area())
	}
	return nil
}

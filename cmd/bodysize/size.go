package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/bodysize/pkg/analysis"
	"github.com/philipparndt/bodysize/pkg/watcher"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	sizeBody  string
	sizeScale float64
	sizeWatch bool
)

var sizeCmd = &cobra.Command{
	Use:   "size [file]",
	Short: "Print the width and height of every body in a scene",
	Long: `Print each body's bounding box and size in local space.
The scaled size uses --scale, BODYSIZE_SCALE or the scene's scale, in that order.
A negative --scale is applied by its magnitude.`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().StringVarP(&sizeBody, "body", "b", "", "Only show this body")
	sizeCmd.Flags().Float64VarP(&sizeScale, "scale", "s", 0, "Scale factor, e.g. pixels per meter")
	sizeCmd.Flags().BoolVarP(&sizeWatch, "watch", "w", false, "Print again whenever the file changes")
}

func runSize(cmd *cobra.Command, args []string) error {
	filename := args[0]

	scaleSet := cmd.Flags().Changed("scale")
	if scaleSet && (sizeScale == 0 || math.IsNaN(sizeScale) || math.IsInf(sizeScale, 0)) {
		return fmt.Errorf("scale must be a finite non-zero number, got %v", sizeScale)
	}

	if err := printSizes(cmd.OutOrStdout(), filename, scaleSet); err != nil {
		if !sizeWatch {
			return err
		}
		log.Error().Err(err).Msg("Failed to measure scene")
	}

	if !sizeWatch {
		return nil
	}

	fw, err := watcher.NewFileWatcher(time.Duration(cfg.WatchDebounceMS) * time.Millisecond)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{filename}, func(string) {
		fmt.Fprintln(cmd.OutOrStdout())
		if err := printSizes(cmd.OutOrStdout(), filename, scaleSet); err != nil {
			log.Error().Err(err).Msg("Failed to measure scene")
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("file", filename).Msg("Watching for changes, press Ctrl+C to stop")
	fw.Run(ctx)
	return nil
}

func printSizes(out io.Writer, filename string, scaleSet bool) error {
	report, err := loadReport(filename, sizeScale, scaleSet)
	if err != nil {
		return err
	}

	bodies := report.Bodies
	if sizeBody != "" {
		body, ok := analysis.FindBody(report, sizeBody)
		if !ok {
			return fmt.Errorf("body %q not found in %s", sizeBody, filename)
		}
		bodies = []analysis.BodyResult{*body}
	}

	fmt.Fprintln(out, "Body Sizes")
	fmt.Fprintln(out, "==========")
	if report.Name != "" {
		fmt.Fprintf(out, "Scene: %s\n", report.Name)
	}
	fmt.Fprintf(out, "File: %s\n", filename)
	fmt.Fprintf(out, "Scale: %g\n\n", report.Scale)

	for _, body := range bodies {
		fmt.Fprintf(out, "%s (%s, %d fixtures)\n", body.Name, body.Type, body.FixtureCount)
		fmt.Fprintf(out, "  Bounds: %s\n", analysis.FormatBounds(body.Bounds))
		fmt.Fprintf(out, "  Width:  %.6f units\n", body.Size.X)
		fmt.Fprintf(out, "  Height: %.6f units\n", body.Size.Y)
		if report.Scale != 1 {
			fmt.Fprintf(out, "  Scaled: %.3f x %.3f\n", body.ScaledSize.X, body.ScaledSize.Y)
		}
		fmt.Fprintln(out)
	}

	if sizeBody == "" {
		fmt.Fprintf(out, "World bounds: %s\n", analysis.FormatBounds(report.WorldBounds))
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/bodysize/pkg/viewer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderWidth  int
	renderHeight int
	renderMargin int
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the scene's fixtures and bounding boxes to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	defaults := viewer.DefaultOptions()
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "bodies.png", "Output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", defaults.Width, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", defaults.Height, "Image height in pixels")
	renderCmd.Flags().IntVar(&renderMargin, "margin", defaults.Margin, "Empty border in pixels")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWidth <= 0 || renderHeight <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", renderWidth, renderHeight)
	}

	report, err := loadReport(args[0], 0, false)
	if err != nil {
		return err
	}

	img := viewer.Rasterize(report, viewer.Options{
		Width:  renderWidth,
		Height: renderHeight,
		Margin: renderMargin,
	})

	file, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", renderOutput, err)
	}
	defer file.Close()

	if err := viewer.EncodePNG(file, img); err != nil {
		return err
	}

	log.Info().Str("file", renderOutput).Int("bodies", report.BodyCount).Msg("Rendered scene")
	return nil
}

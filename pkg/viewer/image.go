package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/philipparndt/bodysize/pkg/analysis"
	"github.com/philipparndt/bodysize/pkg/geometry"
)

// Options controls how a report is rasterized
type Options struct {
	Width  int
	Height int
	Margin int
	Camera *Camera // nil fits the whole world
}

// DefaultOptions returns the options used by the CLI
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Margin: 20}
}

var (
	backgroundColor = color.RGBA{30, 30, 30, 255}
	fillColor       = color.RGBA{35, 65, 90, 140} // premultiplied
	outlineColor    = color.RGBA{220, 220, 220, 255}
	boundsColor     = color.RGBA{255, 165, 0, 255}
	originColor     = color.RGBA{90, 90, 90, 255}
)

// Rasterize draws every fixture of the report and each body's bounding box
func Rasterize(report *analysis.Report, opts Options) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	w, h := float64(opts.Width), float64(opts.Height)
	camera := opts.Camera
	if camera == nil {
		camera = NewCamera(report.WorldBounds, w, h, float64(opts.Margin))
	}

	project := func(o Outline) [][2]float64 {
		points := make([][2]float64, len(o.Points))
		for i, p := range o.Points {
			x, y := camera.Project(p, w, h)
			points[i] = [2]float64{x, y}
		}
		return points
	}

	// World axes through the origin
	ox, oy := camera.Project(geometry.Vector2{}, w, h)
	drawLine(img, 0, round(oy), opts.Width-1, round(oy), originColor)
	drawLine(img, round(ox), 0, round(ox), opts.Height-1, originColor)

	for _, body := range report.Bodies {
		if body.Body == nil {
			continue
		}
		for _, outline := range BodyOutlines(body.Body.B2) {
			points := project(outline)
			if outline.Closed {
				fillPolygon(img, points, fillColor)
			}
			drawPolyline(img, points, outline.Closed, outlineColor)
		}
	}

	// Bounding boxes go last so they stay visible on top of the fill
	for _, body := range report.Bodies {
		if body.Body == nil || body.Bounds.IsEmpty() {
			continue
		}
		rect := RectOutline(body.Body.B2, body.Bounds)
		drawPolyline(img, project(rect), true, boundsColor)
	}

	return img
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

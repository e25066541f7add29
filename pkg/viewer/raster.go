package viewer

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// fillPolygon fills a closed pixel-space polygon with anti-aliasing
func fillPolygon(img *image.RGBA, points [][2]float64, col color.RGBA) {
	if len(points) < 3 {
		return
	}

	bounds := img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over

	z.MoveTo(float32(points[0][0]), float32(points[0][1]))
	for _, p := range points[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()

	z.Draw(img, bounds, image.NewUniform(col), image.Point{})
}

// drawPolyline strokes consecutive points, closing the loop when asked
func drawPolyline(img *image.RGBA, points [][2]float64, closed bool, col color.RGBA) {
	for i := 1; i < len(points); i++ {
		drawLine(img, round(points[i-1][0]), round(points[i-1][1]), round(points[i][0]), round(points[i][1]), col)
	}
	if closed && len(points) > 2 {
		last := points[len(points)-1]
		drawLine(img, round(last[0]), round(last[1]), round(points[0][0]), round(points[0][1]), col)
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

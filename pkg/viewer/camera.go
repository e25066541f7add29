package viewer

import (
	"math"

	"github.com/philipparndt/bodysize/pkg/geometry"
)

// Camera maps world coordinates (y up) to pixel coordinates (y down)
type Camera struct {
	Center geometry.Vector2 // world point shown in the middle of the image
	Zoom   float64          // pixels per world unit
}

// NewCamera creates a camera that fits bounds into a width x height image,
// leaving margin pixels free on every side
func NewCamera(bounds geometry.Bounds, width, height, margin float64) *Camera {
	c := &Camera{Zoom: 1}
	if bounds.IsEmpty() {
		return c
	}

	c.Center = bounds.Center()

	size := bounds.Size()
	usableW := math.Max(1, width-2*margin)
	usableH := math.Max(1, height-2*margin)

	switch {
	case size.X == 0 && size.Y == 0:
		c.Zoom = 1
	case size.X == 0:
		c.Zoom = usableH / size.Y
	case size.Y == 0:
		c.Zoom = usableW / size.X
	default:
		c.Zoom = math.Min(usableW/size.X, usableH/size.Y)
	}
	return c
}

// Pan moves the camera by a pixel offset
func (c *Camera) Pan(dx, dy float64) {
	c.Center.X -= dx / c.Zoom
	c.Center.Y += dy / c.Zoom
}

// ZoomBy changes the zoom by a relative factor
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom *= (1.0 + delta)
	if c.Zoom < 1e-6 {
		c.Zoom = 1e-6
	}
}

// Project converts a world point to pixel coordinates
func (c *Camera) Project(p geometry.Vector2, width, height float64) (float64, float64) {
	x := (p.X-c.Center.X)*c.Zoom + width/2
	y := -(p.Y-c.Center.Y)*c.Zoom + height/2
	return x, y
}

// Unproject converts pixel coordinates back to a world point
func (c *Camera) Unproject(x, y, width, height float64) geometry.Vector2 {
	return geometry.NewVector2(
		(x-width/2)/c.Zoom+c.Center.X,
		-(y-height/2)/c.Zoom+c.Center.Y,
	)
}

package viewer

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/bodysize/pkg/analysis"
	"github.com/philipparndt/bodysize/pkg/geometry"
)

// SceneView is a fyne widget that shows a rasterized report.
// Drag pans, scrolling zooms.
type SceneView struct {
	widget.BaseWidget

	mu       sync.Mutex
	report   *analysis.Report
	camera   *Camera
	onHover  func(point geometry.Vector2)
	lastSize fyne.Size
}

// NewSceneView creates a view for the given report
func NewSceneView(report *analysis.Report) *SceneView {
	v := &SceneView{report: report}
	v.ExtendBaseWidget(v)
	return v
}

// SetReport replaces the displayed report, e.g. after the scene file changed.
// The camera is kept so the user does not lose their view.
func (v *SceneView) SetReport(report *analysis.Report) {
	v.mu.Lock()
	v.report = report
	v.mu.Unlock()
	v.Refresh()
}

// SetOnHover sets the callback receiving the world point under the cursor
func (v *SceneView) SetOnHover(callback func(point geometry.Vector2)) {
	v.onHover = callback
}

// ResetCamera fits the whole world into the view again
func (v *SceneView) ResetCamera() {
	v.mu.Lock()
	v.camera = nil
	v.mu.Unlock()
	v.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(v.draw)
	return widget.NewSimpleRenderer(raster)
}

func (v *SceneView) draw(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()

	opts := DefaultOptions()
	opts.Width, opts.Height = w, h
	if v.camera == nil && v.report != nil {
		v.camera = NewCamera(v.report.WorldBounds, float64(w), float64(h), float64(opts.Margin))
	}
	opts.Camera = v.camera
	v.lastSize = fyne.NewSize(float32(w), float32(h))

	if v.report == nil {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return Rasterize(v.report, opts)
}

// Dragged pans the camera
func (v *SceneView) Dragged(event *fyne.DragEvent) {
	v.mu.Lock()
	if v.camera != nil {
		sx, sy := v.pixelScale()
		v.camera.Pan(float64(event.Dragged.DX*sx), float64(event.Dragged.DY*sy))
	}
	v.mu.Unlock()
	v.Refresh()
}

// DragEnd is required by fyne.Draggable
func (v *SceneView) DragEnd() {}

// Scrolled zooms the camera
func (v *SceneView) Scrolled(event *fyne.ScrollEvent) {
	v.mu.Lock()
	if v.camera != nil {
		v.camera.ZoomBy(float64(event.Scrolled.DY) * 0.002)
	}
	v.mu.Unlock()
	v.Refresh()
}

// MouseMoved reports the world point under the cursor
func (v *SceneView) MouseMoved(event *desktop.MouseEvent) {
	v.mu.Lock()
	camera, size := v.camera, v.lastSize
	scaleX, scaleY := v.pixelScale()
	v.mu.Unlock()

	if camera == nil || v.onHover == nil || size.Width == 0 {
		return
	}

	point := camera.Unproject(
		float64(event.Position.X*scaleX),
		float64(event.Position.Y*scaleY),
		float64(size.Width),
		float64(size.Height),
	)
	v.onHover(point)
}

// MouseIn is required by desktop.Hoverable
func (v *SceneView) MouseIn(*desktop.MouseEvent) {}

// MouseOut is required by desktop.Hoverable
func (v *SceneView) MouseOut() {}

// pixelScale converts canvas units to raster pixels. Callers hold mu.
func (v *SceneView) pixelScale() (float32, float32) {
	size := v.Size()
	if size.Width == 0 || size.Height == 0 || v.lastSize.Width == 0 {
		return 1, 1
	}
	return v.lastSize.Width / size.Width, v.lastSize.Height / size.Height
}

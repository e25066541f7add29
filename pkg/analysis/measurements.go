package analysis

import (
	"fmt"
	"sort"

	"github.com/ByteArena/box2d"
	"github.com/philipparndt/bodysize/pkg/bodysize"
	"github.com/philipparndt/bodysize/pkg/geometry"
	"github.com/philipparndt/bodysize/pkg/scene"
)

// FixtureResult contains the extents of a single fixture
type FixtureResult struct {
	Index  int
	Kind   string
	Bounds geometry.Bounds
	Size   geometry.Vector2
	Known  bool
}

// BodyResult contains the measurements of one body
type BodyResult struct {
	Name         string
	Type         string
	Position     geometry.Vector2
	Angle        float64
	FixtureCount int
	Bounds       geometry.Bounds // local space
	Size         geometry.Vector2
	ScaledSize   geometry.Vector2
	Fixtures     []FixtureResult
	Body         *scene.Body
}

// Report contains the measurements of every body in a world
type Report struct {
	Name         string
	Scale        float64
	Bodies       []BodyResult
	WorldBounds  geometry.Bounds // union of every body's transformed bounds
	BodyCount    int
	FixtureCount int
}

// AnalyzeWorld measures every body of a world. scale is applied to ScaledSize.
func AnalyzeWorld(world *scene.World, scale float64) *Report {
	report := &Report{
		Name:        world.Name,
		Scale:       scale,
		Bodies:      make([]BodyResult, 0, len(world.Bodies)),
		WorldBounds: geometry.NewBounds(),
	}

	for _, body := range world.Bodies {
		result := AnalyzeBody(body, scale)
		report.Bodies = append(report.Bodies, result)
		report.FixtureCount += result.FixtureCount
		report.WorldBounds.Union(WorldSpaceBounds(body.B2, result.Bounds))
	}
	report.BodyCount = len(report.Bodies)

	return report
}

// AnalyzeBody measures a single body
func AnalyzeBody(body *scene.Body, scale float64) BodyResult {
	position := body.B2.GetPosition()
	result := BodyResult{
		Name:       body.Name,
		Type:       body.Type,
		Position:   geometry.NewVector2(position.X, position.Y),
		Angle:      body.B2.GetAngle(),
		Bounds:     bodysize.BodyBounds(body.B2),
		Size:       bodysize.BodySize(body.B2),
		ScaledSize: bodysize.BodySizeScaled(body.B2, scale),
		Body:       body,
	}

	for _, info := range bodysize.Fixtures(body.B2) {
		result.Fixtures = append(result.Fixtures, FixtureResult{
			Index:  info.Index,
			Kind:   info.Kind,
			Bounds: info.Bounds,
			Size:   info.Bounds.Size(),
			Known:  info.Known,
		})
	}
	result.FixtureCount = len(result.Fixtures)

	return result
}

// WorldSpaceBounds transforms the corners of local bounds by the body
// transform and returns the axis-aligned box around them
func WorldSpaceBounds(body *box2d.B2Body, local geometry.Bounds) geometry.Bounds {
	if local.IsEmpty() {
		return local
	}

	xf := body.GetTransform()
	corners := []box2d.B2Vec2{
		box2d.MakeB2Vec2(local.Min.X, local.Min.Y),
		box2d.MakeB2Vec2(local.Max.X, local.Min.Y),
		box2d.MakeB2Vec2(local.Max.X, local.Max.Y),
		box2d.MakeB2Vec2(local.Min.X, local.Max.Y),
	}

	bounds := geometry.NewBounds()
	for _, c := range corners {
		p := box2d.B2TransformVec2Mul(xf, c)
		bounds.Extend(geometry.NewVector2(p.X, p.Y))
	}
	return bounds
}

// FindBody returns the result for the named body
func FindBody(report *Report, name string) (*BodyResult, bool) {
	for i := range report.Bodies {
		if report.Bodies[i].Name == name {
			return &report.Bodies[i], true
		}
	}
	return nil, false
}

// FindLargestBodies returns the N bodies with the largest bounding area
func FindLargestBodies(report *Report, count int) []BodyResult {
	bodies := make([]BodyResult, len(report.Bodies))
	copy(bodies, report.Bodies)

	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].Size.Area() > bodies[j].Size.Area()
	})

	count = max(0, min(count, len(bodies)))

	return bodies[:count]
}

// FindSmallestBodies returns the N bodies with the smallest bounding area
func FindSmallestBodies(report *Report, count int) []BodyResult {
	bodies := make([]BodyResult, len(report.Bodies))
	copy(bodies, report.Bodies)

	sort.SliceStable(bodies, func(i, j int) bool {
		return bodies[i].Size.Area() < bodies[j].Size.Area()
	})

	count = max(0, min(count, len(bodies)))

	return bodies[:count]
}

// FormatVector formats a 2D vector
func FormatVector(v geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}

// FormatBounds formats a bounding box as its two corners
func FormatBounds(b geometry.Bounds) string {
	if b.IsEmpty() {
		return "(empty)"
	}
	return fmt.Sprintf("%s .. %s", FormatVector(b.Min), FormatVector(b.Max))
}

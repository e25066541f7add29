package bodysize

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/philipparndt/bodysize/pkg/geometry"
)

// FixtureInfo describes the extents of a single fixture
type FixtureInfo struct {
	Index  int // creation order, starting at 0
	Kind   string
	Bounds geometry.Bounds
	Known  bool
}

// FixtureBounds returns the local-space extents of a fixture's shape
func FixtureBounds(fixture *box2d.B2Fixture) (geometry.Bounds, bool) {
	if fixture == nil {
		return geometry.NewBounds(), false
	}
	return ShapeBounds(fixture.GetShape())
}

// BodyBounds returns the union of every fixture's extents.
// A body without measurable fixtures yields empty bounds.
func BodyBounds(body *box2d.B2Body) geometry.Bounds {
	bounds := geometry.NewBounds()
	if body == nil {
		return bounds
	}
	for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
		if b, ok := FixtureBounds(f); ok {
			bounds.Union(b)
		}
	}
	return bounds
}

// BodySize returns the width and height of a body
func BodySize(body *box2d.B2Body) geometry.Vector2 {
	return BodyBounds(body).Size()
}

// BodySizeScaled returns BodySize multiplied by scale, e.g. a pixels per
// meter factor. Both components are non-negative.
func BodySizeScaled(body *box2d.B2Body, scale float64) geometry.Vector2 {
	size := BodySize(body)
	return geometry.NewVector2(size.X*math.Abs(scale), size.Y*math.Abs(scale))
}

// Fixtures returns the extents of every fixture in creation order.
// Box2D keeps the fixture list newest first, so the list is reversed here.
func Fixtures(body *box2d.B2Body) []FixtureInfo {
	if body == nil {
		return nil
	}

	var list []*box2d.B2Fixture
	for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
		list = append(list, f)
	}

	infos := make([]FixtureInfo, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		f := list[i]
		bounds, ok := FixtureBounds(f)
		infos = append(infos, FixtureInfo{
			Index:  len(infos),
			Kind:   KindName(f.GetType()),
			Bounds: bounds,
			Known:  ok,
		})
	}
	return infos
}

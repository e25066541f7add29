package viewer

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/philipparndt/bodysize/pkg/geometry"
)

const circleSegments = 32

// Outline is a polyline in world space
type Outline struct {
	Points []geometry.Vector2
	Closed bool // polygons and circles can be filled
}

// BodyOutlines returns the world-space outline of every fixture of a body
func BodyOutlines(body *box2d.B2Body) []Outline {
	xf := body.GetTransform()

	var outlines []Outline
	for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
		local, ok := shapeOutline(f.GetShape())
		if !ok {
			continue
		}
		outlines = append(outlines, transform(xf, local))
	}
	return outlines
}

// RectOutline returns the outline of local bounds placed by the body transform
func RectOutline(body *box2d.B2Body, local geometry.Bounds) Outline {
	return transform(body.GetTransform(), Outline{
		Points: []geometry.Vector2{
			local.Min,
			geometry.NewVector2(local.Max.X, local.Min.Y),
			local.Max,
			geometry.NewVector2(local.Min.X, local.Max.Y),
		},
		Closed: true,
	})
}

func shapeOutline(shape box2d.B2ShapeInterface) (Outline, bool) {
	switch s := shape.(type) {
	case *box2d.B2PolygonShape:
		points := make([]geometry.Vector2, s.M_count)
		for i := 0; i < s.M_count; i++ {
			points[i] = geometry.NewVector2(s.M_vertices[i].X, s.M_vertices[i].Y)
		}
		return Outline{Points: points, Closed: true}, true

	case *box2d.B2ChainShape:
		points := make([]geometry.Vector2, 0, s.M_count)
		for i := 0; i < s.M_count && i < len(s.M_vertices); i++ {
			points = append(points, geometry.NewVector2(s.M_vertices[i].X, s.M_vertices[i].Y))
		}
		return Outline{Points: points}, true

	case *box2d.B2EdgeShape:
		return Outline{Points: []geometry.Vector2{
			geometry.NewVector2(s.M_vertex1.X, s.M_vertex1.Y),
			geometry.NewVector2(s.M_vertex2.X, s.M_vertex2.Y),
		}}, true

	case *box2d.B2CircleShape:
		points := make([]geometry.Vector2, circleSegments)
		for i := range points {
			a := 2 * math.Pi * float64(i) / circleSegments
			points[i] = geometry.NewVector2(
				s.M_p.X+s.M_radius*math.Cos(a),
				s.M_p.Y+s.M_radius*math.Sin(a),
			)
		}
		return Outline{Points: points, Closed: true}, true
	}
	return Outline{}, false
}

func transform(xf box2d.B2Transform, o Outline) Outline {
	points := make([]geometry.Vector2, len(o.Points))
	for i, p := range o.Points {
		w := box2d.B2TransformVec2Mul(xf, box2d.MakeB2Vec2(p.X, p.Y))
		points[i] = geometry.NewVector2(w.X, w.Y)
	}
	return Outline{Points: points, Closed: o.Closed}
}

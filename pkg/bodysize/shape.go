package bodysize

import (
	"github.com/ByteArena/box2d"
	"github.com/philipparndt/bodysize/pkg/geometry"
)

// KindName returns a readable name for a Box2D shape type
func KindName(kind uint8) string {
	switch kind {
	case box2d.B2Shape_Type.E_circle:
		return "circle"
	case box2d.B2Shape_Type.E_edge:
		return "edge"
	case box2d.B2Shape_Type.E_polygon:
		return "polygon"
	case box2d.B2Shape_Type.E_chain:
		return "chain"
	default:
		return "unknown"
	}
}

// ShapeBounds returns the local-space extents of a shape.
// The second return value is false for nil or unsupported shapes.
func ShapeBounds(shape box2d.B2ShapeInterface) (geometry.Bounds, bool) {
	bounds := geometry.NewBounds()

	switch s := shape.(type) {
	case *box2d.B2PolygonShape:
		if s == nil {
			return bounds, false
		}
		for i := 0; i < s.M_count; i++ {
			bounds.Extend(fromB2(s.M_vertices[i]))
		}

	case *box2d.B2ChainShape:
		if s == nil {
			return bounds, false
		}
		for i := 0; i < s.M_count && i < len(s.M_vertices); i++ {
			bounds.Extend(fromB2(s.M_vertices[i]))
		}

	case *box2d.B2EdgeShape:
		if s == nil {
			return bounds, false
		}
		bounds.Extend(fromB2(s.M_vertex1))
		bounds.Extend(fromB2(s.M_vertex2))

	case *box2d.B2CircleShape:
		if s == nil {
			return bounds, false
		}
		center := fromB2(s.M_p)
		r := geometry.NewVector2(s.M_radius, s.M_radius)
		bounds.Extend(center.Sub(r))
		bounds.Extend(center.Add(r))

	default:
		return bounds, false
	}

	return bounds, !bounds.IsEmpty()
}

func fromB2(v box2d.B2Vec2) geometry.Vector2 {
	return geometry.NewVector2(v.X, v.Y)
}

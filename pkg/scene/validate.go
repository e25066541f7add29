package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/ByteArena/box2d"
)

// ErrInvalidScene is wrapped by every validation error
var ErrInvalidScene = errors.New("invalid scene")

// Validate checks the scene for problems Box2D would otherwise assert on
func (s *Scene) Validate() error {
	if !(s.Scale >= 0) || math.IsInf(s.Scale, 1) {
		return fmt.Errorf("%w: scale must be a finite non-negative number, got %v", ErrInvalidScene, s.Scale)
	}

	seen := make(map[string]int, len(s.Bodies))
	for i, body := range s.Bodies {
		if body.Name == "" {
			return fmt.Errorf("%w: body %d: missing name", ErrInvalidScene, i)
		}
		if prev, exists := seen[body.Name]; exists {
			return fmt.Errorf("%w: body %d: name %q already used by body %d", ErrInvalidScene, i, body.Name, prev)
		}
		seen[body.Name] = i

		if _, ok := bodyTypes[body.BodyType()]; !ok {
			return fmt.Errorf("%w: body %q: unknown type %q", ErrInvalidScene, body.Name, body.Type)
		}
		if !body.Position.finite() || !finite(body.Angle) {
			return fmt.Errorf("%w: body %q: position and angle must be finite", ErrInvalidScene, body.Name)
		}

		for j, fixture := range body.Fixtures {
			if err := fixture.validate(); err != nil {
				return fmt.Errorf("%w: body %q: fixture %d: %v", ErrInvalidScene, body.Name, j, err)
			}
		}
	}
	return nil
}

func (f FixtureDef) validate() error {
	n := len(f.Vertices)

	for i, v := range f.Vertices {
		if !v.finite() {
			return fmt.Errorf("vertex %d is not finite: %v", i, v)
		}
	}
	if !f.Center.finite() || !finite(f.Angle) {
		return fmt.Errorf("center and angle must be finite, got %v and %v", f.Center, f.Angle)
	}

	switch f.Shape {
	case ShapeBox:
		// Written as !(x > 0) so NaN is rejected too
		if !(f.HalfWidth > 0) || !(f.HalfHeight > 0) || !finite(f.HalfWidth) || !finite(f.HalfHeight) {
			return fmt.Errorf("box needs positive halfWidth and halfHeight, got %v x %v", f.HalfWidth, f.HalfHeight)
		}
	case ShapePolygon:
		if n < 3 || n > box2d.B2_maxPolygonVertices {
			return fmt.Errorf("polygon needs 3 to %d vertices, got %d", box2d.B2_maxPolygonVertices, n)
		}
	case ShapeCircle:
		if !(f.Radius > 0) || !finite(f.Radius) {
			return fmt.Errorf("circle needs a positive radius, got %v", f.Radius)
		}
	case ShapeEdge:
		if n != 2 {
			return fmt.Errorf("edge needs exactly 2 vertices, got %d", n)
		}
	case ShapeChain:
		if n < 2 {
			return fmt.Errorf("chain needs at least 2 vertices, got %d", n)
		}
	case ShapeLoop:
		if n < 3 {
			return fmt.Errorf("loop needs at least 3 vertices, got %d", n)
		}
	case "":
		return errors.New("missing shape")
	default:
		return fmt.Errorf("unknown shape %q", f.Shape)
	}

	if f.Density != nil && (!(*f.Density >= 0) || !finite(*f.Density)) {
		return fmt.Errorf("density must be a finite non-negative number, got %v", *f.Density)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p Point) finite() bool {
	return finite(p[0]) && finite(p[1])
}

package scene

import (
	"fmt"

	"github.com/ByteArena/box2d"
	"github.com/rs/zerolog/log"
)

var bodyTypes = map[string]uint8{
	BodyStatic:    box2d.B2BodyType.B2_staticBody,
	BodyKinematic: box2d.B2BodyType.B2_kinematicBody,
	BodyDynamic:   box2d.B2BodyType.B2_dynamicBody,
}

// Body is a named Box2D body built from a scene
type Body struct {
	Name string
	Type string
	B2   *box2d.B2Body
}

// World holds the Box2D world built from a scene
type World struct {
	Name   string
	Scale  float64
	Bodies []*Body

	b2     *box2d.B2World
	byName map[string]*Body
}

// B2 returns the underlying Box2D world
func (w *World) B2() *box2d.B2World {
	return w.b2
}

// Body looks up a body by name
func (w *World) Body(name string) (*Body, bool) {
	b, ok := w.byName[name]
	return b, ok
}

// Build creates a zero-gravity Box2D world holding every body of the scene
func Build(s *Scene) (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b2 := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	world := &World{
		Name:   s.Name,
		Scale:  s.Scale,
		Bodies: make([]*Body, 0, len(s.Bodies)),
		b2:     &b2,
		byName: make(map[string]*Body, len(s.Bodies)),
	}

	for _, def := range s.Bodies {
		bodyDef := box2d.MakeB2BodyDef()
		bodyDef.Type = bodyTypes[def.BodyType()]
		bodyDef.Position = def.Position.vec()
		bodyDef.Angle = def.Angle

		b2Body := world.b2.CreateBody(&bodyDef)
		b2Body.SetUserData(def.Name)

		for i, fixture := range def.Fixtures {
			if err := createFixture(b2Body, fixture); err != nil {
				return nil, fmt.Errorf("body %q: fixture %d: %w", def.Name, i, err)
			}
		}

		body := &Body{Name: def.Name, Type: def.BodyType(), B2: b2Body}
		world.Bodies = append(world.Bodies, body)
		world.byName[def.Name] = body

		log.Debug().
			Str("body", def.Name).
			Str("type", body.Type).
			Int("fixtures", len(def.Fixtures)).
			Msg("Body created")
	}

	return world, nil
}

// createFixture attaches one fixture. Box2D asserts on degenerate geometry
// (collinear polygons, duplicate chain vertices); those panics become errors.
func createFixture(body *box2d.B2Body, def FixtureDef) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("box2d rejected %s shape: %v", def.Shape, r)
		}
	}()

	fixtureDef := box2d.MakeB2FixtureDef()
	fixtureDef.Density = def.FixtureDensity()
	fixtureDef.Friction = def.Friction
	fixtureDef.IsSensor = def.Sensor

	switch def.Shape {
	case ShapeBox:
		shape := box2d.MakeB2PolygonShape()
		shape.SetAsBoxFromCenterAndAngle(def.HalfWidth, def.HalfHeight, def.Center.vec(), def.Angle)
		fixtureDef.Shape = &shape

	case ShapePolygon:
		shape := box2d.MakeB2PolygonShape()
		vertices := toB2(def.Vertices)
		shape.Set(vertices, len(vertices))
		fixtureDef.Shape = &shape

	case ShapeCircle:
		shape := box2d.MakeB2CircleShape()
		shape.M_p = def.Center.vec()
		shape.M_radius = def.Radius
		fixtureDef.Shape = &shape

	case ShapeEdge:
		shape := box2d.MakeB2EdgeShape()
		shape.Set(def.Vertices[0].vec(), def.Vertices[1].vec())
		fixtureDef.Shape = &shape

	case ShapeChain:
		shape := box2d.MakeB2ChainShape()
		vertices := toB2(def.Vertices)
		shape.CreateChain(vertices, len(vertices))
		fixtureDef.Shape = &shape

	case ShapeLoop:
		shape := box2d.MakeB2ChainShape()
		vertices := toB2(def.Vertices)
		shape.CreateLoop(vertices, len(vertices))
		fixtureDef.Shape = &shape

	default:
		return fmt.Errorf("%w: unknown shape %q", ErrInvalidScene, def.Shape)
	}

	body.CreateFixtureFromDef(&fixtureDef)
	return nil
}

func (p Point) vec() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(p[0], p[1])
}

func toB2(points []Point) []box2d.B2Vec2 {
	vertices := make([]box2d.B2Vec2, len(points))
	for i, p := range points {
		vertices[i] = p.vec()
	}
	return vertices
}

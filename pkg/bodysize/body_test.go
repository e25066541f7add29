package bodysize

import (
	"math"
	"testing"

	"github.com/ByteArena/box2d"
	"github.com/philipparndt/bodysize/pkg/geometry"
)

func newTestBody() *box2d.B2Body {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	def := box2d.MakeB2BodyDef()
	return world.CreateBody(&def)
}

func addBox(body *box2d.B2Body, hx, hy float64, center box2d.B2Vec2) {
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBoxFromCenterAndAngle(hx, hy, center, 0)
	body.CreateFixture(&shape, 1.0)
}

func addCircle(body *box2d.B2Body, x, y, radius float64) {
	shape := box2d.MakeB2CircleShape()
	shape.M_p = box2d.MakeB2Vec2(x, y)
	shape.M_radius = radius
	body.CreateFixture(&shape, 1.0)
}

func addEdge(body *box2d.B2Body, x1, y1, x2, y2 float64) {
	shape := box2d.MakeB2EdgeShape()
	shape.Set(box2d.MakeB2Vec2(x1, y1), box2d.MakeB2Vec2(x2, y2))
	body.CreateFixture(&shape, 0)
}

func addChain(body *box2d.B2Body, vertices ...box2d.B2Vec2) {
	shape := box2d.MakeB2ChainShape()
	shape.CreateChain(vertices, len(vertices))
	body.CreateFixture(&shape, 0)
}

func assertSize(t *testing.T, got geometry.Vector2, width, height float64) {
	t.Helper()
	if math.Abs(got.X-width) > 1e-10 || math.Abs(got.Y-height) > 1e-10 {
		t.Errorf("Size failed: expected (%v, %v), got (%v, %v)", width, height, got.X, got.Y)
	}
}

func TestBodySizeBox(t *testing.T) {
	body := newTestBody()
	addBox(body, 1, 2, box2d.MakeB2Vec2(0, 0))

	assertSize(t, BodySize(body), 2, 4)
}

func TestBodySizeCircle(t *testing.T) {
	body := newTestBody()
	addCircle(body, 3, -1, 0.5)

	bounds := BodyBounds(body)
	assertSize(t, bounds.Size(), 1, 1)

	if math.Abs(bounds.Left()-2.5) > 1e-10 || math.Abs(bounds.Top()-(-0.5)) > 1e-10 {
		t.Errorf("Circle extents failed: got left=%v top=%v", bounds.Left(), bounds.Top())
	}
}

func TestBodySizeEdge(t *testing.T) {
	body := newTestBody()
	addEdge(body, -2, 1, 3, -1)

	assertSize(t, BodySize(body), 5, 2)
}

func TestBodySizeChain(t *testing.T) {
	body := newTestBody()
	addChain(body,
		box2d.MakeB2Vec2(0, 0),
		box2d.MakeB2Vec2(1, 3),
		box2d.MakeB2Vec2(4, 1),
	)

	assertSize(t, BodySize(body), 4, 3)
}

func TestBodySizeNegativeSpace(t *testing.T) {
	// A zero-seeded maximum would report 0 x 0 here.
	body := newTestBody()
	addBox(body, 1, 1, box2d.MakeB2Vec2(-5, -5))
	addCircle(body, -10, -8, 1)

	bounds := BodyBounds(body)
	assertSize(t, bounds.Size(), 7, 5)

	if math.Abs(bounds.Right()-(-4)) > 1e-10 {
		t.Errorf("Right failed: expected -4, got %v", bounds.Right())
	}
	if math.Abs(bounds.Bottom()-(-9)) > 1e-10 {
		t.Errorf("Bottom failed: expected -9, got %v", bounds.Bottom())
	}
}

func TestBodySizeMixedFixtures(t *testing.T) {
	body := newTestBody()
	addBox(body, 1, 0.5, box2d.MakeB2Vec2(0, 0))
	addCircle(body, 2, 0, 0.5)
	addEdge(body, -3, -1, -1, -1)

	// x: -3 .. 2.5, y: -1 .. 0.5
	assertSize(t, BodySize(body), 5.5, 1.5)
}

func TestBodySizeScaled(t *testing.T) {
	body := newTestBody()
	addBox(body, 1, 2, box2d.MakeB2Vec2(0, 0))

	assertSize(t, BodySizeScaled(body, 32), 64, 128)
	assertSize(t, BodySizeScaled(body, -2), 4, 8)
	assertSize(t, BodySizeScaled(body, 0), 0, 0)
}

func TestBodySizeNoFixtures(t *testing.T) {
	body := newTestBody()

	assertSize(t, BodySize(body), 0, 0)
	if !BodyBounds(body).IsEmpty() {
		t.Error("expected empty bounds for a body without fixtures")
	}
	assertSize(t, BodySize(nil), 0, 0)
}

func TestShapeBoundsUnsupported(t *testing.T) {
	if _, ok := ShapeBounds(nil); ok {
		t.Error("expected nil shape to be unsupported")
	}

	var polygon *box2d.B2PolygonShape
	if _, ok := ShapeBounds(polygon); ok {
		t.Error("expected typed nil polygon to be unsupported")
	}
}

func TestFixturesCreationOrder(t *testing.T) {
	body := newTestBody()
	addBox(body, 1, 1, box2d.MakeB2Vec2(0, 0))
	addCircle(body, 5, 0, 1)
	addEdge(body, 0, 0, 1, 0)

	infos := Fixtures(body)
	if len(infos) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(infos))
	}

	expectedKinds := []string{"polygon", "circle", "edge"}
	for i, info := range infos {
		if info.Index != i {
			t.Errorf("fixture %d: expected index %d, got %d", i, i, info.Index)
		}
		if info.Kind != expectedKinds[i] {
			t.Errorf("fixture %d: expected kind %s, got %s", i, expectedKinds[i], info.Kind)
		}
		if !info.Known {
			t.Errorf("fixture %d: expected known shape", i)
		}
	}

	assertSize(t, infos[1].Bounds.Size(), 2, 2)
}

func TestKindName(t *testing.T) {
	if KindName(box2d.B2Shape_Type.E_chain) != "chain" {
		t.Errorf("expected chain, got %s", KindName(box2d.B2Shape_Type.E_chain))
	}
	if KindName(box2d.B2Shape_Type.E_typeCount) != "unknown" {
		t.Errorf("expected unknown, got %s", KindName(box2d.B2Shape_Type.E_typeCount))
	}
}

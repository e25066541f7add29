package geometry

import (
	"math"
	"testing"
)

func TestBoundsExtend(t *testing.T) {
	bbox := NewBounds()

	bbox.Extend(NewVector2(1, 2))
	bbox.Extend(NewVector2(4, 5))
	bbox.Extend(NewVector2(-1, 0))

	expectedMin := NewVector2(-1, 0)
	expectedMax := NewVector2(4, 5)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundsNegativeSpace(t *testing.T) {
	// Every point is below and left of the origin; the origin must not leak in.
	bbox := BoundsOf(NewVector2(-5, -3), NewVector2(-2, -1))

	size := bbox.Size()
	expected := NewVector2(3, 2)
	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
	if bbox.Right() != -2 || bbox.Top() != -1 {
		t.Errorf("Corners failed: got right=%v top=%v", bbox.Right(), bbox.Top())
	}
}

func TestBoundsEmpty(t *testing.T) {
	bbox := NewBounds()
	if !bbox.IsEmpty() {
		t.Fatal("expected new bounds to be empty")
	}
	if size := bbox.Size(); size != (Vector2{}) {
		t.Errorf("expected zero size, got %v", size)
	}
	if bbox.Contains(Vector2{}) {
		t.Error("empty bounds must not contain the origin")
	}

	bbox.Extend(NewVector2(3, 4))
	if bbox.IsEmpty() {
		t.Fatal("expected bounds to be non-empty after Extend")
	}
	if size := bbox.Size(); size != (Vector2{}) {
		t.Errorf("single point should have zero size, got %v", size)
	}
}

func TestBoundsUnion(t *testing.T) {
	a := BoundsOf(NewVector2(0, 0), NewVector2(1, 1))
	b := BoundsOf(NewVector2(-2, 3), NewVector2(-1, 4))

	a.Union(b)
	a.Union(NewBounds())

	if a.Min != NewVector2(-2, 0) || a.Max != NewVector2(1, 4) {
		t.Errorf("Union failed: got %v..%v", a.Min, a.Max)
	}
}

func TestBoundsCenter(t *testing.T) {
	bbox := BoundsOf(NewVector2(0, 0), NewVector2(10, 20))

	center := bbox.Center()
	expected := NewVector2(5, 10)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestBoundsScale(t *testing.T) {
	bbox := BoundsOf(NewVector2(-1, 2), NewVector2(3, 4))

	scaled := bbox.Scale(10)
	if scaled.Min != NewVector2(-10, 20) || scaled.Max != NewVector2(30, 40) {
		t.Errorf("Scale failed: got %v..%v", scaled.Min, scaled.Max)
	}

	mirrored := bbox.Scale(-1)
	if mirrored.Min != NewVector2(-3, -4) || mirrored.Max != NewVector2(1, -2) {
		t.Errorf("Negative scale failed: got %v..%v", mirrored.Min, mirrored.Max)
	}
	if size := mirrored.Size(); math.Abs(size.X-4) > 1e-10 || math.Abs(size.Y-2) > 1e-10 {
		t.Errorf("Negative scale size failed: got %v", size)
	}
}

func TestBoundsExpand(t *testing.T) {
	bbox := BoundsOf(NewVector2(0, 0), NewVector2(2, 2)).Expand(1)

	if !bbox.Contains(NewVector2(-1, 3)) {
		t.Error("expected expanded bounds to contain (-1, 3)")
	}
	if bbox.Contains(NewVector2(-1.5, 0)) {
		t.Error("expected expanded bounds not to contain (-1.5, 0)")
	}
}

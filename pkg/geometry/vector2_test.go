package geometry

import (
	"math"
	"testing"
)

func TestVector2Add(t *testing.T) {
	result := NewVector2(1, 2).Add(NewVector2(4, 5))

	expected := NewVector2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Sub(t *testing.T) {
	result := NewVector2(5, 7).Sub(NewVector2(1, 2))

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Length(t *testing.T) {
	length := NewVector2(3, 4).Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector2Abs(t *testing.T) {
	result := NewVector2(-3, 4).Abs()

	expected := NewVector2(3, 4)
	if result != expected {
		t.Errorf("Abs failed: expected %v, got %v", expected, result)
	}
}

func TestVector2MinMax(t *testing.T) {
	a := NewVector2(1, 5)
	b := NewVector2(3, -2)

	if got := a.Min(b); got != NewVector2(1, -2) {
		t.Errorf("Min failed: got %v", got)
	}
	if got := a.Max(b); got != NewVector2(3, 5) {
		t.Errorf("Max failed: got %v", got)
	}
}

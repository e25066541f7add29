package geometry

// Bounds is an axis-aligned rectangle. The zero value is empty; the first
// point passed to Extend seeds both corners.
type Bounds struct {
	Min Vector2
	Max Vector2

	valid bool
}

// NewBounds creates an empty bounding box
func NewBounds() Bounds {
	return Bounds{}
}

// BoundsOf returns the bounds of the given points
func BoundsOf(points ...Vector2) Bounds {
	b := NewBounds()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// IsEmpty reports whether no point has been added yet
func (b Bounds) IsEmpty() bool {
	return !b.valid
}

// Extend expands the bounding box to include a point
func (b *Bounds) Extend(point Vector2) {
	if !b.valid {
		b.Min = point
		b.Max = point
		b.valid = true
		return
	}
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Union expands the bounding box to include another one
func (b *Bounds) Union(other Bounds) {
	if other.IsEmpty() {
		return
	}
	b.Extend(other.Min)
	b.Extend(other.Max)
}

// Size returns the width and height of the bounding box
func (b Bounds) Size() Vector2 {
	if b.IsEmpty() {
		return Vector2{}
	}
	return b.Max.Sub(b.Min).Abs()
}

// Center returns the center point of the bounding box
func (b Bounds) Center() Vector2 {
	if b.IsEmpty() {
		return Vector2{}
	}
	return Vector2{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
	}
}

// Scale multiplies both corners by factor. Negative factors mirror the box,
// so the corners are re-sorted.
func (b Bounds) Scale(factor float64) Bounds {
	if b.IsEmpty() {
		return b
	}
	return BoundsOf(b.Min.Mul(factor), b.Max.Mul(factor))
}

// Expand grows the box by margin on every side
func (b Bounds) Expand(margin float64) Bounds {
	if b.IsEmpty() {
		return b
	}
	return BoundsOf(
		b.Min.Sub(NewVector2(margin, margin)),
		b.Max.Add(NewVector2(margin, margin)),
	)
}

// Contains reports whether the point lies inside or on the box
func (b Bounds) Contains(p Vector2) bool {
	return b.valid &&
		p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Bounds) Top() float64    { return b.Max.Y }
func (b Bounds) Right() float64  { return b.Max.X }
func (b Bounds) Bottom() float64 { return b.Min.Y }
func (b Bounds) Left() float64   { return b.Min.X }

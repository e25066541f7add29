// Package bodysize measures the width and height of a Box2D body from the
// shapes attached to its fixtures.
//
// All extents are in the body's local space: the body transform is not
// applied. Polygon skin radius is ignored, so a box created with SetAsBox(1, 2)
// measures exactly 2 x 4.
package bodysize

// pkg/physics/collision.go
package physics

// Rect represents an axis-aligned rectangle anchored at its top-left corner.
// Y grows downwards, matching screen coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle
func (r Rect) Center() Vector2D {
	return NewVector2D(r.X+r.W/2, r.Y+r.H/2)
}

// Collides checks whether two closed rectangles overlap.
// Touching edges count as a collision.
func (r Rect) Collides(other Rect) bool {
	return !(r.Left() > other.Right() ||
		r.Right() < other.Left() ||
		r.Top() > other.Bottom() ||
		r.Bottom() < other.Top())
}

// Clamp limits value to the closed interval [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

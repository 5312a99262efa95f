// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components.
// Magnitude and normal are computed on first use and cached until the
// components change through Set.
type Vector2D struct {
	x float64
	y float64

	mag       float64
	hasMag    bool
	normal    *Vector2D
	hasNormal bool
}

// NewVector2D creates a vector from its components
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{x: x, y: y}
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		x: magnitude * math.Cos(angle),
		y: magnitude * math.Sin(angle),
	}
}

// X returns the horizontal component
func (v Vector2D) X() float64 { return v.x }

// Y returns the vertical component
func (v Vector2D) Y() float64 { return v.y }

// Set copies the components of other into v and drops any cached values.
func (v *Vector2D) Set(other Vector2D) {
	v.x = other.x
	v.y = other.y
	v.invalidate()
}

func (v *Vector2D) invalidate() {
	v.hasMag = false
	v.mag = 0
	v.normal = nil
	v.hasNormal = false
}

// Equals reports exact component equality
func (v Vector2D) Equals(other Vector2D) bool {
	return v.x == other.x && v.y == other.y
}

// Clone returns an independent copy without cached values
func (v Vector2D) Clone() Vector2D {
	return Vector2D{x: v.x, y: v.y}
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		x: v.x + other.x,
		y: v.y + other.y,
	}
}

// Subtract returns the difference between two vectors
func (v Vector2D) Subtract(other Vector2D) Vector2D {
	return Vector2D{
		x: v.x - other.x,
		y: v.y - other.y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		x: v.x * factor,
		y: v.y * factor,
	}
}

// DotProduct returns Ax*Bx + Ay*By, which equals |A||B|cos(θ).
func (v Vector2D) DotProduct(other Vector2D) float64 {
	return v.x*other.x + v.y*other.y
}

// CosineOfAngleTo returns cos(θ) for the angle between v and other.
// Both vectors must have a non-zero magnitude.
func (v *Vector2D) CosineOfAngleTo(other Vector2D) float64 {
	return v.DotProduct(other) / (v.Magnitude() * other.Magnitude())
}

// Magnitude returns the length of the vector
func (v *Vector2D) Magnitude() float64 {
	if !v.hasMag {
		v.mag = math.Sqrt(v.x*v.x + v.y*v.y)
		v.hasMag = true
	}
	return v.mag
}

// Normal returns the unit vector perpendicular to v, rotated +90°.
func (v *Vector2D) Normal() Vector2D {
	if !v.hasNormal {
		n := Vector2D{x: -v.y, y: v.x}
		n.Normalize()
		v.normal = &n
		v.hasNormal = true
	}
	return v.normal.Clone()
}

// Normalize scales v in place to unit length.
// A zero vector cannot be normalized and is left unchanged.
func (v *Vector2D) Normalize() {
	mag := v.Magnitude()
	if mag == 0 || mag == 1 {
		return
	}
	v.Set(Vector2D{x: v.x / mag, y: v.y / mag})
	v.mag = 1
	v.hasMag = true
}

// Bounce reflects v off a surface described by its tangent vector.
func (v Vector2D) Bounce(surface Vector2D) Vector2D {
	return v.BounceWithNormal(surface.Normal())
}

// BounceWithNormal returns R = V - 2(V·N)N. The normal must be unit length.
func (v Vector2D) BounceWithNormal(normal Vector2D) Vector2D {
	return v.Subtract(normal.Scale(2 * v.DotProduct(normal)))
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.y, v.x)
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vector2D{
		x: v.x*cos - v.y*sin,
		y: v.x*sin + v.y*cos,
	}
}

// ClampAngle rotates v in place so that its angle lies within [min, max],
// keeping its magnitude. The interval may extend past ±π (e.g. a cone
// around π) as long as max-min is less than 2π. Angles outside the interval
// snap to the nearer bound.
func (v *Vector2D) ClampAngle(min, max float64) {
	if v.x == 0 && v.y == 0 {
		return
	}

	angle := v.Angle()
	for angle < min {
		angle += 2 * math.Pi
	}
	for angle >= min+2*math.Pi {
		angle -= 2 * math.Pi
	}
	if angle <= max {
		return
	}

	// Between max and min+2π: pick whichever bound is closer.
	target := max
	if angle-max > min+2*math.Pi-angle {
		target = min
	}
	v.Set(FromAngle(target, v.Magnitude()))
}

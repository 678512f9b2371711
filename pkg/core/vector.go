package core

import (
	"github.com/chewxy/math32"
)

// Vector is a point or direction in world space.
type Vector struct {
	X, Y, Z float32
}

// NewVector creates a new Vector
func NewVector(x, y, z float32) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector multiplied by a scalar
func (v Vector) Scale(s float32) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(s float32) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude of the vector
func (v Vector) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Negate returns the vector pointing the opposite way
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Normalize returns a unit vector in the same direction. Zero-length and
// non-finite vectors have no direction and yield ErrDegenerateVector.
func (v Vector) Normalize() (Vector, error) {
	length := v.Length()
	if length == 0 || !Finite(length) {
		return Vector{}, ErrDegenerateVector
	}
	return v.Divide(length), nil
}

// Reflect mirrors v about normal: 2·n·(n·v) − v. The normal is expected to
// be unit length.
func (v Vector) Reflect(normal Vector) Vector {
	return normal.Scale(2 * normal.Dot(v)).Subtract(v)
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vector) IsFinite() bool {
	return Finite(v.X) && Finite(v.Y) && Finite(v.Z)
}

// Ray is origin + t·direction. The direction is not normalized; its length
// sets the scale of t.
type Ray struct {
	Origin    Vector
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vector {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

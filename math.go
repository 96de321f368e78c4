package spiral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrDivisionByZero is returned whenever a vector is divided by a zero
// scalar. It is the only arithmetic failure of a propagation: a zero
// velocity (undefined thrust direction) and a zero radius (singular gravity)
// both surface as this error.
var ErrDivisionByZero = errors.New("vector division by zero")

// Vec2 is a vector in the heliocentric plane. Positions are in km,
// velocities in km/s and accelerations in km/s².
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of both vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the difference of both vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns the vector scaled by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{k * v.X, k * v.Y}
}

// Div returns the vector divided by k, and fails with ErrDivisionByZero if k
// is exactly zero.
func (v Vec2) Div(k float64) (Vec2, error) {
	if k == 0 {
		return Vec2{}, ErrDivisionByZero
	}
	return Vec2{v.X / k, v.Y / k}, nil
}

// Norm returns the norm of the vector.
func (v Vec2) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Unit returns the unit vector, and fails with ErrDivisionByZero for a zero
// vector.
func (v Vec2) Unit() (Vec2, error) {
	return v.Div(v.Norm())
}

// Dot performs the inner product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Equals returns whether both vectors are equal within a tight tolerance.
func (v Vec2) Equals(o Vec2) bool {
	return scalar.EqualWithinAbs(v.X, o.X, 1e-12) && scalar.EqualWithinAbs(v.Y, o.Y, 1e-12)
}

// String implements the Stringer interface.
func (v Vec2) String() string {
	return fmt.Sprintf("[%g %g]", v.X, v.Y)
}

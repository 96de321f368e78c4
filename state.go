package spiral

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultStepSize is the propagation step of a transfer.
	DefaultStepSize = 50 * time.Second
	// DefaultMaxDuration is the hard limit on any propagation, ten years.
	DefaultMaxDuration = time.Duration(24*3652.5) * time.Hour
)

// ErrMassDepleted is returned in strict mass mode when the propagated total
// mass reaches zero or drops below it.
var ErrMassDepleted = errors.New("total mass depleted")

// State is the propagated state of a spacecraft: heliocentric position and
// velocity, total mass and the time elapsed since departure.
type State struct {
	R       Vec2    // Position in km
	V       Vec2    // Velocity in km/s
	Mass    float64 // Total mass in kg
	Elapsed float64 // Seconds since departure
}

// RNorm returns the heliocentric radius in km.
func (s State) RNorm() float64 {
	return s.R.Norm()
}

// VNorm returns the speed in km/s.
func (s State) VNorm() float64 {
	return s.V.Norm()
}

// DT returns the date of this state for the given departure epoch.
func (s State) DT(epoch time.Time) time.Time {
	return epoch.Add(time.Duration(s.Elapsed * float64(time.Second)))
}

// String implements the Stringer interface.
func (s State) String() string {
	return fmt.Sprintf("r=%s km v=%s km/s m=%.3f kg t=%.0f s", s.R, s.V, s.Mass, s.Elapsed)
}

// Parameters fixes the physical model of a transfer. None of these change
// during a propagation.
type Parameters struct {
	μ               float64       // Gravitational parameter of the central body in km³/s²
	DepartureRadius float64       // Radius of the circular departure orbit in km
	ArrivalRadius   float64       // Radius to be crossed for arrival in km
	G0              float64       // Standard gravity in km/s² for the mass flow rate
	Step            time.Duration // Fixed integration step
	MaxDuration     time.Duration // Hard kill on the propagation
	StrictMass      bool          // Fail with ErrMassDepleted instead of propagating a negative mass
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (p Parameters) GM() float64 {
	return p.μ
}

// Outward returns whether this transfer raises the orbit.
func (p Parameters) Outward() bool {
	return p.ArrivalRadius >= p.DepartureRadius
}

// NewParameters returns the parameters for a transfer between circular
// heliocentric orbits of the given radii, with the default step, hard kill
// and standard gravity.
func NewParameters(μ, departureRadius, arrivalRadius float64) Parameters {
	return Parameters{μ, departureRadius, arrivalRadius, EarthSurfaceGravity, DefaultStepSize, DefaultMaxDuration, false}
}

// DefaultParameters returns the parameters of the reference Earth to Mars
// transfer: the Sun as central body, departure at 1 AU (rounded) and arrival
// at 1.52 times that.
func DefaultParameters() Parameters {
	return NewParameters(1.327e11, 1.496e8, 1.52*1.496e8)
}

// Gravity returns the gravitational acceleration at position r in km/s² for
// the gravitational parameter μ. It fails with ErrDivisionByZero at the
// origin, where the field is singular.
func Gravity(μ float64, r Vec2) (Vec2, error) {
	r3 := math.Pow(r.Norm(), 3)
	if r3 == 0 {
		return Vec2{}, fmt.Errorf("gravity at zero radius: %w", ErrDivisionByZero)
	}
	return r.Scale(-μ / r3), nil
}

// ThrustAccel returns the thrust acceleration in km/s² for a thrust in kN, a
// total mass in kg and a unit direction. The mass is not checked: thrusting
// with a nonsensical mass yields a nonsensical acceleration.
func ThrustAccel(thrust, mass float64, dir Vec2) Vec2 {
	return dir.Scale(thrust / mass)
}

// Integrate advances the state by one step of semi-implicit Euler: the
// velocity is updated first and the position update uses the *updated*
// velocity. Swapping that order changes every trajectory this package
// computes, so don't.
func Integrate(s State, accel Vec2, mdot, dt float64) State {
	velocity := s.V.Add(accel.Scale(dt))
	return State{
		R:       s.R.Add(velocity.Scale(dt)),
		V:       velocity,
		Mass:    s.Mass - mdot*dt,
		Elapsed: s.Elapsed + dt,
	}
}

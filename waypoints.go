package spiral

import "fmt"

// Waypoint defines the Waypoint interface. The arrival waypoint drives the
// thrust direction on every step until it reports cleared.
type Waypoint interface {
	Cleared() bool // returns whether waypoint has been reached
	ThrustDirection(s State) (ThrustControl, bool)
	String() string
}

// ReachRadius is a waypoint which thrusts until a given heliocentric radius
// is crossed, prograde to spiral out and retrograde to spiral in.
type ReachRadius struct {
	radius           float64
	outward, cleared bool
}

// String implements the Waypoint interface.
func (wp *ReachRadius) String() string {
	return fmt.Sprintf("Reach heliocentric radius of %.1f km.", wp.radius)
}

// Cleared implements the Waypoint interface.
func (wp *ReachRadius) Cleared() bool {
	return wp.cleared
}

// Radius returns the radius to be crossed, in km.
func (wp *ReachRadius) Radius() float64 {
	return wp.radius
}

// ThrustDirection implements the Waypoint interface.
func (wp *ReachRadius) ThrustDirection(s State) (ThrustControl, bool) {
	if wp.outward {
		if s.RNorm() >= wp.radius {
			wp.cleared = true
			return Coast{"arrived"}, true
		}
		return Prograde{"spiraling out"}, false
	}
	if s.RNorm() <= wp.radius {
		wp.cleared = true
		return Coast{"arrived"}, true
	}
	return Retrograde{"spiraling in"}, false
}

// NewReachRadius defines a new spiral until the given radius is crossed. Set
// outward to false for an inward transfer.
func NewReachRadius(radius float64, outward bool) *ReachRadius {
	return &ReachRadius{radius, outward, false}
}

// NewReachPlanet defines the waypoint of a transfer to the orbit of the
// given planet, departing from a circular orbit of radius departureRadius.
func NewReachPlanet(target CelestialObject, departureRadius float64) *ReachRadius {
	return NewReachRadius(target.OrbitRadius(), target.OrbitRadius() >= departureRadius)
}

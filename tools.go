package spiral

import (
	"math"
	"time"
)

// CircularVelocity returns the speed in km/s of a circular orbit of radius r
// around a body of gravitational parameter μ. The departure state of every
// transfer starts at this speed.
func CircularVelocity(μ, r float64) float64 {
	return math.Sqrt(μ / r)
}

// Hohmann computes an Hohmann transfer between two circular orbits. It
// returns the departure and arrival velocities, and the time of flight.
// To get final computations:
// ΔvInit = vDeparture - vI
// ΔvFinal = vArrival - vF
func Hohmann(rI, rF, μ float64) (vDeparture, vArrival float64, tof time.Duration) {
	aTransfer := 0.5 * (rI + rF)
	vDeparture = math.Sqrt((2 * μ / rI) - (μ / aTransfer))
	vArrival = math.Sqrt((2 * μ / rF) - (μ / aTransfer))
	tof = time.Duration(math.Pi*math.Sqrt(math.Pow(aTransfer, 3)/μ)) * time.Second
	return
}

// HohmannΔv returns the two impulsive burns of the Hohmann transfer between
// the orbits of the given parameters, as a reference against the continuous
// spiral. The signs follow the convention of Hohmann: for an outward
// transfer the final Δv is negative, meaning the arrival burn pushes along
// the velocity vector.
func HohmannΔv(p Parameters) (ΔvInit, ΔvFinal float64, tof time.Duration) {
	vDeparture, vArrival, tof := Hohmann(p.DepartureRadius, p.ArrivalRadius, p.GM())
	ΔvInit = vDeparture - CircularVelocity(p.GM(), p.DepartureRadius)
	ΔvFinal = vArrival - CircularVelocity(p.GM(), p.ArrivalRadius)
	return
}

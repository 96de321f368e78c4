package spiral

import (
	"fmt"
	"strings"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// EarthSurfaceGravity is the standard gravity in km/s². The propellant
	// mass flow rate of the electric thrusters is referenced to it.
	EarthSurfaceGravity = 9.81e-3
)

// CelestialObject defines a celestial object of the solar system.
// The planar model treats every planet orbit as a circle of radius a around
// the Sun, so only the gravitational parameter and the mean orbit radius
// matter here.
type CelestialObject struct {
	Name   string
	Radius float64 // Body radius in km
	a      float64 // Mean heliocentric orbit radius in km
	μ      float64 // Gravitational parameter in km³/s²
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// OrbitRadius returns the mean heliocentric orbit radius in km.
func (c CelestialObject) OrbitRadius() float64 {
	return c.a
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined planet '%s'", name)
	}
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700, -1, 1.32712440017987e11}

// Venus is downhill from here.
var Venus = CelestialObject{"Venus", 6051.8, 108208601, 3.24858599e5}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.1363, 149598023, 3.98600433e5}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19, 227939282.5616, 4.28283100e4}

// Jupiter is a very long spiral away.
var Jupiter = CelestialObject{"Jupiter", 71492.0, 778298361, 1.266865361e8}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 60268.0, 1429394133, 3.7931208e7}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", 25559.0, 2875038615, 5.7939513e6}

// Pluto is not a planet, but don't tell it that.
var Pluto = CelestialObject{"Pluto", 1151.0, 5915799000, 9e2}

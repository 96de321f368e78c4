package spiral

import (
	"fmt"
	"strings"
)

// EPThruster defines an electric propulsion thruster. Electric thrusters
// deliver a tiny but continuous thrust at a very high specific impulse,
// which is what makes a multi year spiral transfer worth flying.
type EPThruster interface {
	// Returns the thrust in kN and the specific impulse in seconds.
	Thrust() (thrust, isp float64)
}

/* Available EPThrusters */

// PPS1350 is the Snecma thruster used on SMART-1.
type PPS1350 struct{}

// Thrust implements the EPThruster interface.
func (t *PPS1350) Thrust() (thrust, isp float64) {
	return 89e-6, 1650
}

// HERMeS is based on the NASA & Rocketdyne 12.5kW demo.
type HERMeS struct{}

// Thrust implements the EPThruster interface.
func (t *HERMeS) Thrust() (thrust, isp float64) {
	return 680e-6, 2960
}

// GenericEP is a generic EP thruster.
type GenericEP struct {
	thrust float64
	isp    float64
}

// Thrust implements the EPThruster interface.
func (t *GenericEP) Thrust() (thrust, isp float64) {
	return t.thrust, t.isp
}

// NewGenericEP returns a generic electric prop thruster with the given
// thrust in kN and specific impulse in seconds.
func NewGenericEP(thrust, isp float64) *GenericEP {
	return &GenericEP{thrust, isp}
}

// EPThrusterFromString returns a named thruster, for scenario files.
func EPThrusterFromString(name string) (EPThruster, error) {
	switch strings.ToLower(name) {
	case "pps1350":
		return new(PPS1350), nil
	case "hermes":
		return new(HERMeS), nil
	default:
		return nil, fmt.Errorf("undefined thruster '%s'", name)
	}
}

package spiral

import "fmt"

// SecondsPerYear converts the elapsed seconds of a transfer into years for
// the final report.
const SecondsPerYear = 3.154e7

// Report summarizes the terminal state of a transfer.
type Report struct {
	Target      string  // Name of the arrival body or orbit
	Reached     bool    // Whether the arrival radius was crossed
	FinalRadius float64 // Heliocentric radius at the last step in km
	FinalMass   float64 // Total mass at the last step in kg
	TravelYears float64 // Elapsed time in years
	Δv          float64 // Magnitude of the speed change in km/s
	FuelUsed    float64 // Propellant burned in kg
	Steps       uint64  // Number of integration steps taken
}

// String renders the four line summary printed on arrival. The format is
// stable: scripts parse it.
func (r Report) String() string {
	reached := "No"
	if r.Reached {
		reached = "Yes"
	}
	return fmt.Sprintf("Reached %s: %s\nFinal radius: %.6g km\nFinal mass: %.6g kg\nTravel time: %.6g years", r.Target, reached, r.FinalRadius, r.FinalMass, r.TravelYears)
}

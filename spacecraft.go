package spiral

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// Spacecraft defines a spacecraft with a dry mass, a propellant load and its
// electric thrusters. All thrusters fire together and continuously.
type Spacecraft struct {
	Name      string       // Name of spacecraft
	DryMass   float64      // DryMass of spacecraft (in kg)
	FuelMass  float64      // FuelMass of spacecraft (in kg), decreases during the transfer
	Thrusters []EPThruster // All thrusters fire at once
	logger    kitlog.Logger
}

// Mass returns the total wet mass in kg.
func (sc *Spacecraft) Mass() float64 {
	return sc.DryMass + sc.FuelMass
}

// Propulsion returns the total thrust in kN and the propellant mass flow
// rate in kg/s for the provided standard gravity g0 (in km/s²). Both are
// constant for a whole transfer: thrust and specific impulse do not vary.
func (sc *Spacecraft) Propulsion(g0 float64) (thrust, mdot float64) {
	for _, th := range sc.Thrusters {
		t, isp := th.Thrust()
		thrust += t
		mdot += t / (isp * g0)
	}
	return
}

// LogInfo logs the summary of this spacecraft.
func (sc *Spacecraft) LogInfo() {
	thrust, _ := sc.Propulsion(EarthSurfaceGravity)
	sc.logger.Log("level", "info", "subsys", "sc", "wetMass(kg)", sc.Mass(), "thrust(kN)", thrust, "thrusters", len(sc.Thrusters))
}

// NewSpacecraft returns a spacecraft and its logfmt logger on stderr. The
// standard output is reserved for the transfer report.
func NewSpacecraft(name string, dryMass, fuelMass float64, thrusters []EPThruster) *Spacecraft {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	klog = kitlog.With(klog, "spacecraft", name)
	return &Spacecraft{name, dryMass, fuelMass, thrusters, klog}
}

// NewEmptySC returns a spacecraft with no thrusters and no fuel.
func NewEmptySC(name string, mass float64) *Spacecraft {
	return NewSpacecraft(name, mass, 0, []EPThruster{})
}

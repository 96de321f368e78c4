package spiral

import (
	"fmt"
	"math"
	"sync"
	"time"
)

/* Handles the propagation of continuous low-thrust transfers. */

// Transfer defines a low-thrust transfer between two circular heliocentric
// orbits and does the propagation.
type Transfer struct {
	Vehicle      *Spacecraft // As pointer because the fuel mass is updated during propagation.
	State        State
	Params       Parameters
	Arrival      Waypoint
	StartDT      time.Time
	target       string
	thrust, mdot float64 // Resolved once at departure, constant after that
	conf         ExportConfig
	histChan     chan<- State
	telem        *Telemetry
	wg           sync.WaitGroup
	steps        uint64
	killed, done bool
}

// NewTransfer returns a new Transfer departing from a circular orbit of the
// departure radius, with the provided export configuration.
func NewTransfer(sc *Spacecraft, params Parameters, start time.Time, target string, conf ExportConfig) *Transfer {
	// If no export is enabled, then no output will be written.
	var histChan chan State
	// All stamped dates are in UTC.
	if start.Location() != time.UTC {
		start = start.UTC()
	}
	thrust, mdot := sc.Propulsion(params.G0)
	initState := State{
		R:       Vec2{params.DepartureRadius, 0},
		V:       Vec2{0, CircularVelocity(params.GM(), params.DepartureRadius)},
		Mass:    sc.Mass(),
		Elapsed: 0,
	}
	a := &Transfer{
		Vehicle: sc,
		State:   initState,
		Params:  params,
		Arrival: NewReachRadius(params.ArrivalRadius, params.Outward()),
		StartDT: start,
		target:  target,
		thrust:  thrust,
		mdot:    mdot,
		conf:    conf,
	}
	if !conf.IsUseless() {
		histChan = make(chan State, 1000) // a 1k entry buffer
		a.histChan = histChan
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			StreamStates(conf, start, histChan)
		}()
		// Write the first data point.
		histChan <- initState
	}
	return a
}

// RegisterTelemetry publishes every propagated state to the given telemetry.
func (a *Transfer) RegisterTelemetry(t *Telemetry) {
	a.telem = t
}

// Target returns the name of the arrival body or orbit.
func (a *Transfer) Target() string {
	return a.target
}

// LogStatus logs the status of the propagation and vehicle.
func (a *Transfer) LogStatus() {
	a.Vehicle.logger.Log("level", "info", "subsys", "astro", "date", a.State.DT(a.StartDT), "radius(km)", a.State.RNorm(), "speed(km/s)", a.State.VNorm(), "fuel(kg)", a.Vehicle.FuelMass)
}

// Propagate starts the propagation and blocks until the arrival waypoint is
// cleared, the hard duration limit kills the run, or the physics fail. The
// returned report is valid in all three cases, the error only in the last.
func (a *Transfer) Propagate() (Report, error) {
	// Add a ticker status report for long propagations.
	a.LogStatus()
	tickDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.LogStatus()
			case <-tickDone:
				return
			}
		}
	}()
	vInit := a.State.VNorm()
	initFuel := a.Vehicle.FuelMass
	err := a.run() // Blocking.
	a.done = true
	close(tickDone)
	if a.histChan != nil {
		close(a.histChan)
	}
	a.wg.Wait() // Don't return until we're done writing all the files.
	vFinal := a.State.VNorm()
	duration := time.Duration(a.State.Elapsed * float64(time.Second))
	durStr := duration.String()
	if duration.Hours() > 24 {
		durStr += fmt.Sprintf(" (~%.3fd)", duration.Hours()/24)
	}
	a.Vehicle.logger.Log("level", "notice", "subsys", "astro", "status", "finished", "duration", durStr, "Δv(km/s)", math.Abs(vFinal-vInit), "fuel(kg)", initFuel-a.Vehicle.FuelMass)
	a.LogStatus()
	if a.Vehicle.FuelMass < 0 {
		a.Vehicle.logger.Log("level", "critical", "subsys", "prop", "fuel(kg)", a.Vehicle.FuelMass)
	}
	rprt := a.report(math.Abs(vFinal-vInit), initFuel-a.Vehicle.FuelMass)
	if a.conf.Summary {
		if sumErr := WriteSummary(a.conf, a.StartDT, rprt); sumErr != nil {
			a.Vehicle.logger.Log("level", "critical", "subsys", "export", "err", sumErr)
		}
	}
	return rprt, err
}

// run propagates step by step until the arrival waypoint clears or the hard
// kill triggers.
func (a *Transfer) run() error {
	ctrl, cleared := a.Arrival.ThrustDirection(a.State)
	for !cleared {
		if a.State.Elapsed > a.Params.MaxDuration.Seconds() {
			// A hard limit is set on the propagation.
			a.killed = true
			a.Vehicle.logger.Log("level", "critical", "subsys", "astro", "status", "killed", "duration", a.Params.MaxDuration)
			break
		}
		next, err := a.step(ctrl)
		if err != nil {
			return err
		}
		prevFuel := a.Vehicle.FuelMass
		a.State = next
		a.Vehicle.FuelMass = next.Mass - a.Vehicle.DryMass
		// Propulsion sanity check
		if prevFuel > 0 && a.Vehicle.FuelMass <= 0 {
			a.Vehicle.logger.Log("level", "critical", "subsys", "prop", "fuel(kg)", a.Vehicle.FuelMass)
		}
		a.steps++
		if a.histChan != nil {
			a.histChan <- next
		}
		if a.telem != nil {
			a.telem.Update(next, a.Vehicle.FuelMass)
		}
		ctrl, cleared = a.Arrival.ThrustDirection(a.State)
	}
	return nil
}

// step computes a single transition: the total acceleration at the current
// state, then one semi-implicit Euler increment.
func (a *Transfer) step(ctrl ThrustControl) (State, error) {
	gravity, err := Gravity(a.Params.GM(), a.State.R)
	if err != nil {
		return State{}, err
	}
	dir, err := ctrl.Control(a.State)
	if err != nil {
		return State{}, fmt.Errorf("%s control: %w", ctrl.Type(), err)
	}
	accel := gravity.Add(ThrustAccel(a.thrust, a.State.Mass, dir))
	next := Integrate(a.State, accel, a.mdot, a.Params.Step.Seconds())
	if a.Params.StrictMass && next.Mass <= 0 {
		return State{}, fmt.Errorf("after %.0f s: %w", next.Elapsed, ErrMassDepleted)
	}
	return next, nil
}

// report summarizes the propagation outcome.
func (a *Transfer) report(Δv, fuelUsed float64) Report {
	return Report{
		Target:      a.target,
		Reached:     a.Arrival.Cleared(),
		FinalRadius: a.State.RNorm(),
		FinalMass:   a.State.Mass,
		TravelYears: a.State.Elapsed / SecondsPerYear,
		Δv:          Δv,
		FuelUsed:    fuelUsed,
		Steps:       a.steps,
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/aparnak11/spiral"
)

// This code effectively only reads the scenario file and propagates the
// transfer. The four line report lands on stdout, everything else on stderr.

const defaultScenario = "~~unset~~"

var (
	scenario  string
	telemetry string
	verbose   bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "transfer scenario TOML file (defaults to the reference Earth to Mars transfer)")
	flag.StringVar(&telemetry, "telemetry", "", "serve live telemetry on this address, e.g. :8086")
	flag.BoolVar(&verbose, "verbose", false, "log the resolved scenario and the Hohmann reference")
}

func main() {
	flag.Parse()
	// Load scenario
	var scn *spiral.Scenario
	if scenario == defaultScenario {
		scn = spiral.DefaultScenario()
	} else {
		var err error
		scn, err = spiral.LoadScenario(scenario)
		if err != nil {
			log.Fatalf("%s: %s", scenario, err)
		}
	}
	if telemetry != "" {
		scn.TelemetryAddr = telemetry
	}
	if verbose {
		log.Printf("[conf] %s", scn)
		scn.Vehicle.LogInfo()
		ΔvInit, ΔvFinal, tof := spiral.HohmannΔv(scn.Params)
		log.Printf("[conf] Hohmann reference: Δv=%.3f km/s, tof=%s", math.Abs(ΔvInit)+math.Abs(ΔvFinal), tof)
	}

	xfer := spiral.NewTransfer(scn.Vehicle, scn.Params, scn.Start, scn.Target, scn.Export)
	if scn.TelemetryAddr != "" {
		telem := spiral.NewTelemetry()
		go func() {
			if err := telem.Serve(scn.TelemetryAddr); err != nil {
				log.Printf("telemetry: %s", err)
			}
		}()
		xfer.RegisterTelemetry(telem)
		log.Printf("telemetry on %s", scn.TelemetryAddr)
	}

	rprt, err := xfer.Propagate()
	if err != nil {
		log.Fatalf("propagation failed: %s", err)
	}
	fmt.Println(rprt)
}

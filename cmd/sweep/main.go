package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/dgravesa/go-parallel/parallel"
	"gonum.org/v1/gonum/floats"

	"github.com/aparnak11/spiral"
)

/*
 * This example shows how the travel time and fuel use of the reference
 * transfer change with the available thrust. Each run is independent, so the
 * sweep spreads over all CPUs and streams every result to a CSV file.
 */

var (
	cpus      int
	runs      int
	minThrust float64
	maxThrust float64
	isp       float64
	wg        sync.WaitGroup
)

func init() {
	// Read flags
	flag.IntVar(&cpus, "cpus", -1, "number of CPUs to use for this sweep (set to 0 for max CPUs)")
	flag.IntVar(&runs, "runs", 13, "number of thrust values to try")
	flag.Float64Var(&minThrust, "min", 200e-6, "lowest thrust in kN")
	flag.Float64Var(&maxThrust, "max", 800e-6, "highest thrust in kN")
	flag.Float64Var(&isp, "isp", 9000, "specific impulse in seconds")
}

func main() {
	flag.Parse()
	availableCPUs := runtime.NumCPU()
	if cpus <= 0 || cpus > availableCPUs {
		cpus = availableCPUs
	}
	fmt.Printf("running on %d CPUs\n", cpus)

	if runs < 2 || minThrust <= 0 || maxThrust <= minThrust || isp <= 0 {
		fmt.Println("invalid sweep range")
		flag.Usage()
		return
	}

	ref := spiral.DefaultScenario()
	thrusts := make([]float64, runs)
	floats.Span(thrusts, minThrust, maxThrust)

	type outcome struct {
		thrust float64
		rprt   spiral.Report
		err    error
	}
	outcomes := make([]outcome, runs)
	rslts := make(chan string, 10)
	wg.Add(1)
	go streamResults(fmt.Sprintf("sweep-isp%.0fs", isp), rslts)

	parallel.WithNumGoroutines(cpus).For(runs, func(i, _ int) {
		sc := spiral.NewSpacecraft(fmt.Sprintf("sweep-%02d", i), ref.Vehicle.DryMass, ref.Vehicle.FuelMass, []spiral.EPThruster{spiral.NewGenericEP(thrusts[i], isp)})
		xfer := spiral.NewTransfer(sc, ref.Params, ref.Start, ref.Target, spiral.ExportConfig{})
		rprt, err := xfer.Propagate()
		outcomes[i] = outcome{thrusts[i], rprt, err}
		if err != nil {
			rslts <- fmt.Sprintf("%.6g,error,,,\n", thrusts[i])
			return
		}
		rslts <- fmt.Sprintf("%.6g,%v,%.4f,%.2f,%.4f\n", thrusts[i], rprt.Reached, rprt.TravelYears, rprt.FuelUsed, rprt.Δv)
	})
	close(rslts)
	wg.Wait()

	best, worst := -1, -1
	for i, oc := range outcomes {
		if oc.err != nil || !oc.rprt.Reached {
			continue
		}
		if best < 0 || oc.rprt.TravelYears < outcomes[best].rprt.TravelYears {
			best = i
		}
		if worst < 0 || oc.rprt.TravelYears > outcomes[worst].rprt.TravelYears {
			worst = i
		}
	}
	if best < 0 {
		fmt.Println("\n=== RESULT ===\n\nno run reached the target")
		return
	}
	fmt.Printf("\n=== RESULT ===\n\nfastest: %.6g kN in %.4f years (%.2f kg of fuel)\nslowest: %.6g kN in %.4f years (%.2f kg of fuel)\n",
		outcomes[best].thrust, outcomes[best].rprt.TravelYears, outcomes[best].rprt.FuelUsed,
		outcomes[worst].thrust, outcomes[worst].rprt.TravelYears, outcomes[worst].rprt.FuelUsed)
}

func streamResults(fn string, rslts <-chan string) {
	// Write CSV file.
	f, err := os.Create(fmt.Sprintf("./%s.csv", fn))
	if err != nil {
		panic(err)
	}
	defer f.Close()
	// Header
	f.WriteString("thrust(kN),reached,years,fuel(kg),deltaV(km/s)\n")
	for {
		rslt, more := <-rslts
		if more {
			if _, err := f.WriteString(rslt); err != nil {
				panic(err)
			}
		} else {
			break
		}
	}
	wg.Done()
}

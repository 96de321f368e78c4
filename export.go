package spiral

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Summary is the JSON summary written next to the trajectory CSV.
type Summary struct {
	Name        string  `json:"name"`
	Target      string  `json:"target"`
	Reached     bool    `json:"reached"`
	Start       string  `json:"start"`
	FinalRadius float64 `json:"finalRadiusKm"`
	FinalMass   float64 `json:"finalMassKg"`
	TravelYears float64 `json:"travelTimeYears"`
	Δv          float64 `json:"deltaVKmS"`
	FuelUsed    float64 `json:"fuelUsedKg"`
	Steps       uint64  `json:"steps"`
	Created     string  `json:"created"`
}

func (s Summary) String() string {
	return s.Name + " to " + s.Target
}

// WriteSummary writes the summary JSON of a finished transfer.
func WriteSummary(conf ExportConfig, epoch time.Time, rprt Report) error {
	f, err := os.Create(fmt.Sprintf("%s/summary-%s.json", spiralConfig().outputDir, conf.Filename))
	if err != nil {
		return err
	}
	defer f.Close()
	s := Summary{
		Name:        conf.Filename,
		Target:      rprt.Target,
		Reached:     rprt.Reached,
		Start:       epoch.UTC().Format(time.RFC3339),
		FinalRadius: rprt.FinalRadius,
		FinalMass:   rprt.FinalMass,
		TravelYears: rprt.TravelYears,
		Δv:          rprt.Δv,
		FuelUsed:    rprt.FuelUsed,
		Steps:       rprt.Steps,
		Created:     time.Now().UTC().Format(time.RFC3339),
	}
	marsh, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = f.Write(marsh)
	return err
}

// createTrajectoryFile returns a file which requires a defer close statement!
func createTrajectoryFile(filename string, stamped bool, hdr func() string) *os.File {
	config := spiralConfig()
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/trajectory-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/trajectory-%s.csv", config.outputDir, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// A single header row and nothing else before the data: the plotting
	// tools skip exactly one line.
	f.WriteString("t,x,y,vx,vy,mass,radius,jd")
	if hdr != nil {
		f.WriteString("," + hdr())
	}
	return f
}

// StreamStates streams the states of the channel to the trajectory CSV. The
// first three columns stay t, x, y: the plotting tools index them by
// position.
func StreamStates(conf ExportConfig, epoch time.Time, stateChan <-chan State) {
	if !conf.AsCSV {
		// Only the summary was requested, which the propagation writes on
		// its own once finished. Drain the channel regardless.
		for range stateChan {
		}
		return
	}
	every := conf.EveryN
	if every < 1 {
		every = 1
	}
	var f *os.File
	var last State
	var lastWritten bool
	var count int
	writeRow := func(s State) {
		row := fmt.Sprintf("%.3f,%.3f,%.3f,%.6f,%.6f,%.3f,%.3f,%.6f", s.Elapsed, s.R.X, s.R.Y, s.V.X, s.V.Y, s.Mass, s.RNorm(), julian.TimeToJD(s.DT(epoch)))
		if conf.CSVAppend != nil {
			row += "," + conf.CSVAppend(s)
		}
		if _, err := f.WriteString("\n" + row); err != nil {
			panic(err)
		}
	}
	for {
		state, more := <-stateChan
		if more {
			if f == nil {
				f = createTrajectoryFile(conf.Filename, conf.Timestamp, conf.CSVAppendHdr)
			}
			lastWritten = count%every == 0
			if lastWritten {
				writeRow(state)
			}
			last = state
			count++
		} else {
			// The channel is closed, hence the propagation is over.
			if f != nil {
				if count > 0 && !lastWritten {
					// Always land the terminal state, thinned or not.
					writeRow(last)
				}
				f.Close()
			}
			break
		}
	}
}

// ExportConfig configures the exporting of the transfer.
type ExportConfig struct {
	Filename     string
	AsCSV        bool
	Summary      bool
	Timestamp    bool
	EveryN       int                  // Write every n-th state (≤1 writes all)
	CSVAppend    func(s State) string // Custom export (do not include leading comma)
	CSVAppendHdr func() string        // Header for the custom export
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.Summary
}

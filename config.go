package spiral

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _spiralconfig{}
)

// _spiralconfig is a "hidden" struct, just use `spiralConfig`
type _spiralconfig struct {
	outputDir string
}

// spiralConfig returns the package configuration. The SPIRAL_CONFIG
// environment variable may point to a directory holding a conf.toml, and
// everything defaults to the working directory without it.
func spiralConfig() _spiralconfig {
	if cfgLoaded {
		return config
	}
	outputDir := "."
	if confPath := os.Getenv("SPIRAL_CONFIG"); confPath != "" {
		v := viper.New()
		v.SetConfigName("conf")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if dir := v.GetString("general.output_path"); dir != "" {
			outputDir = dir
		}
	}
	cfgLoaded = true
	config = _spiralconfig{outputDir: outputDir}
	return config
}

// Scenario is a fully resolved transfer setup, read from a TOML file or
// built from the defaults.
type Scenario struct {
	Name          string
	Start         time.Time
	Params        Parameters
	Vehicle       *Spacecraft
	Target        string
	Export        ExportConfig
	TelemetryAddr string
}

// String implements the Stringer interface.
func (scn Scenario) String() string {
	return fmt.Sprintf("%s: %s to %s (%.4g => %.4g km) step=%s", scn.Name, scn.Vehicle.Name, scn.Target, scn.Params.DepartureRadius, scn.Params.ArrivalRadius, scn.Params.Step)
}

// DefaultScenario returns the reference transfer: Earth departure at
// 1.496e8 km, arrival at 1.52 times that, one 450 mN thruster at 9000 s of
// specific impulse on a ten metric ton vehicle.
func DefaultScenario() *Scenario {
	sc := NewSpacecraft("Spiral-1", 9000, 1000, []EPThruster{NewGenericEP(450e-6, 9000)})
	return &Scenario{
		Name:    "earth2mars",
		Start:   time.Date(2018, 11, 8, 0, 0, 0, 0, time.UTC),
		Params:  DefaultParameters(),
		Vehicle: sc,
		Target:  "Mars",
		Export:  ExportConfig{},
	}
}

// LoadScenario reads a scenario TOML file. Every key is optional and
// defaults to its DefaultScenario value, so a file may tweak a single number
// and inherit the rest.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return scenarioFromViper(v, name)
}

func scenarioFromViper(v *viper.Viper, name string) (*Scenario, error) {
	v.SetDefault("mission.step", "50s")
	v.SetDefault("mission.max", "87660h")
	v.SetDefault("spacecraft.name", "Spiral-1")
	v.SetDefault("spacecraft.dry", 9000.0)
	v.SetDefault("spacecraft.fuel", 1000.0)
	v.SetDefault("spacecraft.thrust", 450e-6)
	v.SetDefault("spacecraft.isp", 9000.0)
	v.SetDefault("constants.mu", 1.327e11)
	v.SetDefault("constants.g0", EarthSurfaceGravity)
	v.SetDefault("export.every", 1)

	start := confReadJDEorTime(v, "mission.start")
	if start.IsZero() {
		start = time.Date(2018, 11, 8, 0, 0, 0, 0, time.UTC)
	}
	step := v.GetDuration("mission.step")
	if step <= 0 {
		return nil, fmt.Errorf("non-positive step '%s'", v.GetString("mission.step"))
	}
	maxDur := v.GetDuration("mission.max")
	if maxDur <= 0 {
		return nil, fmt.Errorf("non-positive propagation limit '%s'", v.GetString("mission.max"))
	}
	μ := v.GetFloat64("constants.mu")
	g0 := v.GetFloat64("constants.g0")
	if μ <= 0 || g0 <= 0 {
		return nil, fmt.Errorf("non-positive constants (mu=%g, g0=%g)", μ, g0)
	}

	// The departure radius may come from a named body or a plain radius,
	// with the explicit number winning.
	depRadius := 0.0
	if depBody := v.GetString("departure.body"); depBody != "" {
		body, err := CelestialObjectFromString(depBody)
		if err != nil {
			return nil, err
		}
		depRadius = body.OrbitRadius()
	}
	if r := v.GetFloat64("departure.radius"); r > 0 {
		depRadius = r
	}
	if depRadius == 0 {
		depRadius = 1.496e8
	}

	// Arrival precedence: explicit radius, then multiplier of the departure
	// radius, then the orbit radius of the named body.
	target := v.GetString("arrival.body")
	arrRadius := 0.0
	if target != "" {
		body, err := CelestialObjectFromString(target)
		if err != nil {
			return nil, err
		}
		arrRadius = body.OrbitRadius()
	}
	if mult := v.GetFloat64("arrival.multiplier"); mult > 0 {
		arrRadius = mult * depRadius
	}
	if r := v.GetFloat64("arrival.radius"); r > 0 {
		arrRadius = r
	}
	if arrRadius == 0 {
		target = "Mars"
		arrRadius = 1.52 * depRadius
	}
	if target == "" {
		target = "target"
	}

	count := v.GetInt("spacecraft.count")
	if count < 1 {
		count = 1
	}
	var thrusters []EPThruster
	switch thName := strings.ToLower(v.GetString("spacecraft.thruster")); thName {
	case "generic", "":
		thrust := v.GetFloat64("spacecraft.thrust")
		isp := v.GetFloat64("spacecraft.isp")
		if thrust < 0 || (thrust > 0 && isp <= 0) {
			return nil, fmt.Errorf("invalid generic thruster (thrust=%g kN, isp=%g s)", thrust, isp)
		}
		for i := 0; i < count; i++ {
			thrusters = append(thrusters, NewGenericEP(thrust, isp))
		}
	default:
		th, err := EPThrusterFromString(thName)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			thrusters = append(thrusters, th)
		}
	}
	dry := v.GetFloat64("spacecraft.dry")
	fuel := v.GetFloat64("spacecraft.fuel")
	if dry < 0 || fuel < 0 || dry+fuel == 0 {
		return nil, fmt.Errorf("invalid masses (dry=%g kg, fuel=%g kg)", dry, fuel)
	}
	sc := NewSpacecraft(v.GetString("spacecraft.name"), dry, fuel, thrusters)

	params := Parameters{
		μ:               μ,
		DepartureRadius: depRadius,
		ArrivalRadius:   arrRadius,
		G0:              g0,
		Step:            step,
		MaxDuration:     maxDur,
		StrictMass:      v.GetBool("mission.strict"),
	}
	exportName := v.GetString("export.name")
	if exportName == "" {
		exportName = name
	}
	conf := ExportConfig{
		Filename:  exportName,
		AsCSV:     v.GetBool("export.csv"),
		Summary:   v.GetBool("export.summary"),
		Timestamp: v.GetBool("export.timestamp"),
		EveryN:    v.GetInt("export.every"),
	}
	return &Scenario{
		Name:          name,
		Start:         start,
		Params:        params,
		Vehicle:       sc,
		Target:        target,
		Export:        conf,
		TelemetryAddr: v.GetString("telemetry.addr"),
	}, nil
}

// confReadJDEorTime reads the date as a Julian date or a formatted time.
func confReadJDEorTime(v *viper.Viper, key string) (dt time.Time) {
	jde := v.GetFloat64(key)
	if jde == 0 {
		dt = v.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return
}

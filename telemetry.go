package spiral

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Telemetry exposes the live state of a propagation over HTTP: prometheus
// gauges on /metrics and a JSON snapshot on /status. Each propagation gets
// its own registry so that parallel sweeps do not collide.
type Telemetry struct {
	registry      *prometheus.Registry
	radiusGauge   prometheus.Gauge
	velocityGauge prometheus.Gauge
	massGauge     prometheus.Gauge
	fuelGauge     prometheus.Gauge
	elapsedGauge  prometheus.Gauge
	stepsCounter  prometheus.Counter

	mu   sync.RWMutex
	last State
	fuel float64
}

// StatusSnapshot is the JSON served on /status.
type StatusSnapshot struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	RadiusKm     float64 `json:"radiusKm"`
	VelocityKms  float64 `json:"velocityKms"`
	MassKg       float64 `json:"massKg"`
	FuelKg       float64 `json:"fuelKg"`
	ElapsedYears float64 `json:"elapsedYears"`
}

// NewTelemetry returns a telemetry with all its gauges registered.
func NewTelemetry() *Telemetry {
	t := &Telemetry{
		registry:      prometheus.NewRegistry(),
		radiusGauge:   prometheus.NewGauge(prometheus.GaugeOpts{Name: "transfer_radius_km"}),
		velocityGauge: prometheus.NewGauge(prometheus.GaugeOpts{Name: "transfer_velocity_kms"}),
		massGauge:     prometheus.NewGauge(prometheus.GaugeOpts{Name: "transfer_mass_kg"}),
		fuelGauge:     prometheus.NewGauge(prometheus.GaugeOpts{Name: "transfer_fuel_kg"}),
		elapsedGauge:  prometheus.NewGauge(prometheus.GaugeOpts{Name: "transfer_elapsed_years"}),
		stepsCounter:  prometheus.NewCounter(prometheus.CounterOpts{Name: "transfer_steps_total"}),
	}
	t.registry.MustRegister(
		t.radiusGauge, t.velocityGauge, t.massGauge,
		t.fuelGauge, t.elapsedGauge, t.stepsCounter,
	)
	return t
}

// Update publishes the state of the latest propagation step.
func (t *Telemetry) Update(s State, fuelMass float64) {
	t.radiusGauge.Set(s.RNorm())
	t.velocityGauge.Set(s.VNorm())
	t.massGauge.Set(s.Mass)
	t.fuelGauge.Set(fuelMass)
	t.elapsedGauge.Set(s.Elapsed / SecondsPerYear)
	t.stepsCounter.Inc()
	t.mu.Lock()
	t.last = s
	t.fuel = fuelMass
	t.mu.Unlock()
}

// Handler returns the HTTP router serving /metrics and /status.
func (t *Telemetry) Handler() http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})).Methods("GET")
	router.HandleFunc("/status", t.statusHandler).Methods("GET")
	return router
}

// Serve blocks serving the telemetry endpoints on addr.
func (t *Telemetry) Serve(addr string) error {
	return http.ListenAndServe(addr, t.Handler())
}

func (t *Telemetry) statusHandler(w http.ResponseWriter, r *http.Request) {
	t.mu.RLock()
	snap := StatusSnapshot{
		X:            t.last.R.X,
		Y:            t.last.R.Y,
		RadiusKm:     t.last.RNorm(),
		VelocityKms:  t.last.VNorm(),
		MassKg:       t.last.Mass,
		FuelKg:       t.fuel,
		ElapsedYears: t.last.Elapsed / SecondsPerYear,
	}
	t.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

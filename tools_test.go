package spiral

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCircularVelocity(t *testing.T) {
	v := CircularVelocity(1.327e11, 1.496e8)
	if !scalar.EqualWithinAbs(v*v, 1.327e11/1.496e8, 1e-9) {
		t.Fatalf("v=%f km/s", v)
	}
	if !scalar.EqualWithinAbs(v, 29.7831, 1e-4) {
		t.Fatalf("v=%f km/s", v)
	}
}

func TestHohmannVallado(t *testing.T) {
	// From Vallado 4th edition, example 6-1.
	params := NewParameters(Earth.GM(), Earth.Radius+191.34411, Earth.Radius+35781.34857)
	ΔvInit, ΔvFinal, tof := HohmannΔv(params)
	if !scalar.EqualWithinAbs(ΔvInit, 2.457038, 1e-5) {
		t.Fatalf("ΔvInit=%f km/s", ΔvInit)
	}
	if !scalar.EqualWithinAbs(ΔvFinal, -1.478187, 1e-5) {
		t.Fatalf("ΔvFinal=%f km/s", ΔvFinal)
	}
	if exp := 5*time.Hour + 15*time.Minute + 24*time.Second; tof != exp {
		t.Fatalf("tof=%s", tof)
	}
}

func TestHohmannReference(t *testing.T) {
	// The impulsive reference for the default transfer: about 5.56 km/s and
	// 258 days, against roughly 5.63 km/s and 3.84 years for the spiral.
	ΔvInit, ΔvFinal, tof := HohmannΔv(DefaultParameters())
	if total := math.Abs(ΔvInit) + math.Abs(ΔvFinal); total < 5.4 || total > 5.7 {
		t.Fatalf("total Δv=%f km/s", total)
	}
	if days := tof.Hours() / 24; days < 257 || days > 260 {
		t.Fatalf("tof=%.1f days", days)
	}
}

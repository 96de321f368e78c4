package spiral

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}
	if sum := a.Add(b); !vectorsEqual(sum, Vec2{4, -2}) {
		t.Fatalf("a+b=%s", sum)
	}
	if diff := a.Sub(b); !vectorsEqual(diff, Vec2{-2, 6}) {
		t.Fatalf("a-b=%s", diff)
	}
	if scaled := b.Scale(-0.5); !vectorsEqual(scaled, Vec2{-1.5, 2}) {
		t.Fatalf("-0.5*b=%s", scaled)
	}
	if dot := a.Dot(b); dot != -5 {
		t.Fatalf("a·b=%f", dot)
	}
	if !a.Add(b).Equals(b.Add(a)) {
		t.Fatal("addition does not commute")
	}
	div, err := a.Div(-3)
	if err != nil {
		t.Fatalf("division failed: %s", err)
	}
	if !vectorsEqual(div.Scale(-3), a) {
		t.Fatalf("a/k*k=%s", div.Scale(-3))
	}
	if !scalar.EqualWithinAbs(a.Scale(-3).Norm(), 3*a.Norm(), 1e-12) {
		t.Fatalf("|k*a|=%f", a.Scale(-3).Norm())
	}
	if !a.Equals(Vec2{1, 2}) || a.Equals(b) {
		t.Fatal("Equals is broken")
	}
	if len(a.String()) == 0 {
		t.Fatal("String is empty")
	}
}

func TestVec2Norm(t *testing.T) {
	if norm := (Vec2{3, 4}).Norm(); norm != 5 {
		t.Fatalf("|[3 4]|=%f", norm)
	}
	if norm := (Vec2{}).Norm(); norm != 0 {
		t.Fatal("norm of a nil vector was not nil")
	}
	unit, err := Vec2{10, 0}.Unit()
	if err != nil {
		t.Fatalf("unit failed: %s", err)
	}
	if !vectorsEqual(unit, Vec2{1, 0}) {
		t.Fatalf("unit=%s", unit)
	}
	unit, err = Vec2{-3, 4}.Unit()
	if err != nil {
		t.Fatalf("unit failed: %s", err)
	}
	if !scalar.EqualWithinAbs(unit.Norm(), 1, 1e-12) {
		t.Fatalf("|unit|=%f", unit.Norm())
	}
}

func TestVec2DivisionByZero(t *testing.T) {
	if _, err := (Vec2{1, 1}).Div(0); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("division by zero returned %v", err)
	}
	if _, err := (Vec2{}).Unit(); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("unit of a nil vector returned %v", err)
	}
	div, err := Vec2{1, -2}.Div(2)
	if err != nil {
		t.Fatalf("division failed: %s", err)
	}
	if !vectorsEqual(div, Vec2{0.5, -1}) {
		t.Fatalf("div=%s", div)
	}
	// A tiny denominator is not a zero denominator.
	if _, err := (Vec2{1, 1}).Div(math.SmallestNonzeroFloat64); err != nil {
		t.Fatalf("tiny denominator failed: %s", err)
	}
}

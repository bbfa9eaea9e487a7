package core

import (
	"math"
	"testing"
)

func TestClampInside(t *testing.T) {
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Fatalf("Clamp(0.25, 0, 1) = %v, want 0.25", got)
	}
}

func TestClampOutside(t *testing.T) {
	if got := Clamp(-3, -1, 1); got != -1 {
		t.Fatalf("Clamp(-3, -1, 1) = %v, want -1", got)
	}

	if got := Clamp(3, -1, 1); got != 1 {
		t.Fatalf("Clamp(3, -1, 1) = %v, want 1", got)
	}
}

func TestClampReversedRange(t *testing.T) {
	if got := Clamp(2, 1, 0); got != 1 {
		t.Fatalf("Clamp(2, 1, 0) = %v, want 1", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Fatal("zero must equal zero at the default epsilon")
	}
}

func TestAmplitudeDBRoundTrip(t *testing.T) {
	if got := LinearToDB(DBToLinear(-6)); !NearlyEqual(got, -6, 1e-10) {
		t.Fatalf("round trip = %v, want -6", got)
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}
}

func TestPowerDBRoundTrip(t *testing.T) {
	p := DBPowerToLinear(3)
	if !NearlyEqual(p, 2.0, 0.01) {
		t.Fatalf("DBPowerToLinear(3) = %v, want ~2", p)
	}

	if got := LinearPowerToDB(p); !NearlyEqual(got, 3, 1e-10) {
		t.Fatalf("round trip = %v, want 3", got)
	}

	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearPowerToDB(-1)) {
		t.Fatal("LinearPowerToDB(-1) should be NaN")
	}
}

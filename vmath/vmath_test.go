package vmath

import (
	"math"
	"testing"
)

func TestNormalizeZero(t *testing.T) {
	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
	n := V(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("unit length = %f, want 1", n.Len())
	}
}

func TestClampNaN(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -1, 0, 1, 0},
		{"above", 2, 0, 1, 1},
		{"inside", 0.5, 0, 1, 0.5},
		{"nan", math.NaN(), 0, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestAngleDiffWraps(t *testing.T) {
	d := AngleDiff(math.Pi-0.1, -math.Pi+0.1)
	if math.Abs(d-0.2) > 1e-9 {
		t.Errorf("AngleDiff across seam = %f, want 0.2", d)
	}
}

func TestFastRandFloatRange(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f out of [0,1)", f)
		}
	}
	if r.Chance(0) {
		t.Error("Chance(0) returned true")
	}
	if !r.Chance(1) {
		t.Error("Chance(1) returned false")
	}
}

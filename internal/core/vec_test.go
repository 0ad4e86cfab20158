package core

import (
	"math"
	"testing"
)

func TestVecAddSubScale(t *testing.T) {
	a := V(1, 2)
	b := V(3, -1)

	if got := a.Add(b); got != V(4, 1) {
		t.Errorf("Add = %v, expected (4,1)", got)
	}
	if got := a.Sub(b); got != V(-2, 3) {
		t.Errorf("Sub = %v, expected (-2,3)", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale = %v, expected (2,4)", got)
	}
}

func TestVecNormUnitLength(t *testing.T) {
	inputs := []Vec2{
		V(1, 0), V(0, -1), V(3, 4), V(-0.7, 0.2), V(1e-3, 1e-3), V(-5, -12),
	}
	for _, in := range inputs {
		n := in.Norm()
		if math.Abs(n.Len()-1) > 1e-9 {
			t.Errorf("Norm(%v).Len() = %v, expected 1", in, n.Len())
		}
		// Angle must be preserved
		if math.Abs(n.Angle()-in.Angle()) > 1e-9 {
			t.Errorf("Norm(%v) changed angle: %v vs %v", in, n.Angle(), in.Angle())
		}
	}
}

func TestVecNormZero(t *testing.T) {
	if got := (Vec2{}).Norm(); got != (Vec2{}) {
		t.Errorf("Norm of zero vector = %v, expected zero", got)
	}
}

func TestVecDist(t *testing.T) {
	if got := V(0, 0).Dist(V(3, 4)); math.Abs(got-5) > 1e-9 {
		t.Errorf("Dist = %v, expected 5", got)
	}
	if got := V(2, 2).Dist(V(2, 2)); got != 0 {
		t.Errorf("Dist to self = %v, expected 0", got)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		rad  float64
		want Vec2
	}{
		{0, V(1, 0)},
		{math.Pi / 2, V(0, 1)},
		{math.Pi, V(-1, 0)},
	}
	for _, tc := range tests {
		got := FromAngle(tc.rad)
		if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
			t.Errorf("FromAngle(%v) = %v, expected %v", tc.rad, got, tc.want)
		}
	}
}

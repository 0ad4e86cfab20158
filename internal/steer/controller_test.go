package steer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-slither/internal/core"
)

func TestHeadingUnitMagnitude(t *testing.T) {
	c := New(ModeContinuous, 0)

	inputs := []core.Vec2{
		core.V(1, 0),
		core.V(0, -1),
		core.V(0.3, 0.3),
		core.V(-0.9, 0.1),
		core.V(0.02, 0),
		core.V(-0.5, -0.5),
	}
	for _, in := range inputs {
		h, ok := c.Heading(in)
		if !ok {
			t.Fatalf("Heading(%v) unexpectedly below deadzone", in)
		}
		if math.Abs(h.Len()-1) > 1e-9 {
			t.Errorf("Heading(%v).Len() = %v, expected 1", in, h.Len())
		}
	}
}

func TestHeadingPreservesAngle(t *testing.T) {
	c := New(ModeContinuous, 0)

	in := core.V(0.6, -0.25)
	h, ok := c.Heading(in)
	if !ok {
		t.Fatal("input above deadzone rejected")
	}
	if math.Abs(h.Angle()-in.Angle()) > 1e-9 {
		t.Errorf("angle changed: %v vs %v", h.Angle(), in.Angle())
	}
}

func TestHeadingDeadzone(t *testing.T) {
	c := New(ModeContinuous, 0)

	small := []core.Vec2{
		{},
		core.V(0.005, 0),
		core.V(0, -0.009),
		core.V(0.004, 0.004),
	}
	for _, in := range small {
		if _, ok := c.Heading(in); ok {
			t.Errorf("Heading(%v) should be a no-op below the deadzone", in)
		}
	}
}

func TestHeadingClampsInput(t *testing.T) {
	c := New(ModeContinuous, 0)

	// (5, 0) clamps to (1, 0); the heading must match the clamped input.
	h, ok := c.Heading(core.V(5, 0))
	if !ok {
		t.Fatal("clamped input rejected")
	}
	if math.Abs(h.X-1) > 1e-9 || math.Abs(h.Y) > 1e-9 {
		t.Errorf("Heading(5, 0) = %v, expected (1, 0)", h)
	}

	// (3, -4) clamps to (1, -1) before normalization, not to a 3-4-5 angle.
	h, ok = c.Heading(core.V(3, -4))
	if !ok {
		t.Fatal("clamped input rejected")
	}
	want := core.V(1, -1).Norm()
	if math.Abs(h.X-want.X) > 1e-9 || math.Abs(h.Y-want.Y) > 1e-9 {
		t.Errorf("Heading(3, -4) = %v, expected %v", h, want)
	}
}

func TestHeadingSnapped(t *testing.T) {
	c := New(ModeSnapped, 4)

	tests := []struct {
		in   core.Vec2
		want core.Vec2
	}{
		{core.V(1, 0.1), core.V(1, 0)},   // near +X snaps to +X
		{core.V(0.1, 1), core.V(0, 1)},   // near +Y snaps to +Y
		{core.V(-1, 0.2), core.V(-1, 0)}, // near -X snaps to -X
		{core.V(0.05, -0.9), core.V(0, -1)},
	}
	for _, tc := range tests {
		h, ok := c.Heading(tc.in)
		if !ok {
			t.Fatalf("Heading(%v) rejected", tc.in)
		}
		if math.Abs(h.X-tc.want.X) > 1e-9 || math.Abs(h.Y-tc.want.Y) > 1e-9 {
			t.Errorf("Heading(%v) = %v, expected %v", tc.in, h, tc.want)
		}
	}
}

func TestHeadingSnappedEight(t *testing.T) {
	c := New(ModeSnapped, 8)

	// Exactly diagonal input stays diagonal with 8 sectors.
	h, ok := c.Heading(core.V(0.7, 0.7))
	if !ok {
		t.Fatal("diagonal input rejected")
	}
	want := core.FromAngle(math.Pi / 4)
	if math.Abs(h.X-want.X) > 1e-9 || math.Abs(h.Y-want.Y) > 1e-9 {
		t.Errorf("Heading diagonal = %v, expected %v", h, want)
	}
}

func TestNewFallsBackToContinuous(t *testing.T) {
	c := New(Mode("bogus"), -3)
	if c.mode != ModeContinuous {
		t.Errorf("mode = %q, expected continuous fallback", c.mode)
	}
	if c.sectors != DefaultSectors {
		t.Errorf("sectors = %d, expected %d", c.sectors, DefaultSectors)
	}
}

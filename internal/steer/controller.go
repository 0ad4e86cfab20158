// Package steer converts raw analog input vectors into snake headings.
// It owns no game state; storing the resulting heading is the caller's
// responsibility.
package steer

import (
	"math"

	"github.com/vovakirdan/tui-slither/internal/core"
)

// Mode selects the turning granularity.
type Mode string

const (
	// ModeContinuous keeps the input angle as-is; the snake can travel at
	// any angle. This is the default behavior.
	ModeContinuous Mode = "continuous"

	// ModeSnapped quantizes the heading to the nearest of N equally
	// spaced directions (N = sectors; 4 gives quarter turns).
	ModeSnapped Mode = "snapped"
)

// Deadzone is the minimum input magnitude that counts as steering.
// Anything smaller is treated as jitter and leaves the heading unchanged.
const Deadzone = 0.01

// DefaultSectors is the snap count used when the config gives none.
const DefaultSectors = 4

// Controller maps raw input vectors to unit headings.
type Controller struct {
	mode    Mode
	sectors int
}

// New creates a controller for the given mode. A non-positive sector
// count falls back to DefaultSectors.
func New(mode Mode, sectors int) *Controller {
	if sectors <= 0 {
		sectors = DefaultSectors
	}
	if mode != ModeSnapped {
		mode = ModeContinuous
	}
	return &Controller{mode: mode, sectors: sectors}
}

// Heading converts a raw input vector into a unit heading.
// Components are clamped to [-1, 1] first. Inputs below the deadzone
// return ok=false and the caller retains its previous heading.
func (c *Controller) Heading(raw core.Vec2) (heading core.Vec2, ok bool) {
	raw.X = core.ClampF(raw.X, -1, 1)
	raw.Y = core.ClampF(raw.Y, -1, 1)

	if raw.Len() < Deadzone {
		return core.Vec2{}, false
	}

	h := raw.Norm()
	if c.mode == ModeSnapped {
		step := 2 * math.Pi / float64(c.sectors)
		h = core.FromAngle(math.Round(h.Angle()/step) * step)
	}
	return h, true
}

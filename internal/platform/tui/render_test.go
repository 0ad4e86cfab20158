package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/sim"
)

func testSnapshot(state sim.State) sim.Snapshot {
	return sim.Snapshot{
		Snake: []core.Vec2{
			{X: 25, Y: 25},
			{X: 24, Y: 25},
			{X: 23, Y: 25},
		},
		Food:     core.Vec2{X: 10, Y: 10},
		GridSize: 50,
		State:    state,
		Score:    7,
		Best:     12,
		Speed:    6,
	}
}

func TestDrawRunningField(t *testing.T) {
	screen := core.NewScreen(50, 50+hudRows)
	Draw(screen, testSnapshot(sim.StateRunning))

	out := screen.String()
	if !strings.Contains(out, "Score: 7") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(out, "Best: 12") {
		t.Error("HUD should show the best score")
	}

	// With a 50-cell field over a 50-unit grid, cells map 1:1.
	if got := screen.Get(25, 25+hudRows); got != HeadChar {
		t.Errorf("head cell = %q, want %q", got, HeadChar)
	}
	if got := screen.Get(24, 25+hudRows); got != BodyChar {
		t.Errorf("body cell = %q, want %q", got, BodyChar)
	}
	if got := screen.Get(10, 10+hudRows); got != FoodChar {
		t.Errorf("food cell = %q, want %q", got, FoodChar)
	}
}

func TestDrawHeadWinsOverFood(t *testing.T) {
	snap := testSnapshot(sim.StateRunning)
	snap.Food = snap.Snake[0]

	screen := core.NewScreen(50, 50+hudRows)
	Draw(screen, snap)

	if got := screen.Get(25, 25+hudRows); got != HeadChar {
		t.Errorf("shared cell = %q, want head %q", got, HeadChar)
	}
}

func TestDrawOverlays(t *testing.T) {
	cases := []struct {
		state sim.State
		want  string
	}{
		{sim.StateIdle, "SLITHER"},
		{sim.StatePaused, "Paused"},
		{sim.StateGameOver, "Game Over"},
	}

	for _, tc := range cases {
		screen := core.NewScreen(60, 24)
		Draw(screen, testSnapshot(tc.state))
		if !strings.Contains(screen.String(), tc.want) {
			t.Errorf("state %v: overlay should contain %q", tc.state, tc.want)
		}
	}
}

func TestDrawNoOverlayWhileRunning(t *testing.T) {
	screen := core.NewScreen(60, 24)
	Draw(screen, testSnapshot(sim.StateRunning))
	if strings.Contains(screen.String(), "Paused") {
		t.Error("running state should not draw an overlay")
	}
}

func TestMapKeyToFrameSteering(t *testing.T) {
	keys := DefaultKeyMap()
	cases := []struct {
		key  string
		want core.Vec2
	}{
		{"w", core.V(0, -1)},
		{"s", core.V(0, 1)},
		{"a", core.V(-1, 0)},
		{"d", core.V(1, 0)},
	}

	for _, tc := range cases {
		frame := core.NewFrame()
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
		if quit := keys.MapKeyToFrame(msg, &frame); quit {
			t.Fatalf("key %q should not quit", tc.key)
		}
		if !frame.HasSteer {
			t.Fatalf("key %q should set steering", tc.key)
		}
		if frame.Steer != tc.want {
			t.Errorf("key %q steer = %v, want %v", tc.key, frame.Steer, tc.want)
		}
	}
}

func TestMapKeyToFrameActions(t *testing.T) {
	keys := DefaultKeyMap()

	frame := core.NewFrame()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keys.MapKeyToFrame(space, &frame)
	if !frame.Has(core.ActionStart) {
		t.Error("space should trigger start/resume")
	}

	frame = core.NewFrame()
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, &frame)
	if !frame.Has(core.ActionPause) {
		t.Error("p should trigger pause")
	}

	frame = core.NewFrame()
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame)
	if !frame.Has(core.ActionPause) {
		t.Error("esc should trigger pause")
	}

	frame = core.NewFrame()
	if quit := keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, &frame); !quit {
		t.Error("q should request quit")
	}

	frame = core.NewFrame()
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, &frame)
	if !frame.Has(core.ActionRestart) {
		t.Error("r should trigger restart")
	}
}

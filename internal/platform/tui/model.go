package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/sim"
	"github.com/vovakirdan/tui-slither/internal/steer"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

// GameModel is the Bubble Tea model for a slither session. It runs two
// independent loops: simulation ticks advance the engine at the fixed
// tick rate, render frames redraw the latest snapshot at the display
// rate.
type GameModel struct {
	engine *sim.Engine
	ctrl   *steer.Controller
	screen *core.Screen
	store  *storage.Store
	cfg    core.RuntimeConfig

	keys  KeyMap
	help  help.Model
	frame core.Frame

	startedAt time.Time
	runSaved  bool
	quitting  bool
}

// NewGameModel creates a model around an engine and motion controller.
// The store may be nil; the game then runs without persistence.
func NewGameModel(engine *sim.Engine, ctrl *steer.Controller, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	engine.AttachRecords(NewScoreKeeper(store))

	return GameModel{
		engine: engine,
		ctrl:   ctrl,
		// Last row is reserved for the help line.
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:  store,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		frame:  core.NewFrame(),
	}
}

// Init starts the two tick loops.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(simTickCmd(m.cfg.TickRate), frameTickCmd(m.cfg.FrameRate))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		return m, nil

	case SimTickMsg:
		return m.handleSimTick()

	case FrameTickMsg:
		// The snapshot is read in View; the message only schedules a
		// redraw and the next frame.
		return m, frameTickCmd(m.cfg.FrameRate)
	}

	return m, nil
}

// handleMouse turns pointer events into analog steering. The playfield
// acts as a virtual joystick centered on the screen: the drag position
// relative to the center becomes the raw input vector. Releasing the
// pointer pauses movement.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		m.frame.SetSteer(m.pointerVector(msg.X, msg.Y))
		m.frame.Set(core.ActionStart)
	case tea.MouseActionRelease:
		m.frame.Set(core.ActionRelease)
	}
}

// pointerVector maps screen coordinates to [-1, 1]² around the
// playfield center. Out-of-range values are clamped by the controller.
func (m *GameModel) pointerVector(x, y int) core.Vec2 {
	halfW := float64(m.screen.Width()) / 2
	halfH := float64(m.screen.Height()-hudRows) / 2
	if halfW <= 0 || halfH <= 0 {
		return core.Vec2{}
	}
	cx := halfW
	cy := float64(hudRows) + halfH
	return core.V((float64(x)-cx)/halfW, (float64(y)-cy)/halfH)
}

// handleSimTick applies the buffered input and advances the simulation
// by exactly one step.
func (m GameModel) handleSimTick() (tea.Model, tea.Cmd) {
	state := m.engine.Snapshot().State

	if m.frame.Has(core.ActionRestart) && state == sim.StateGameOver {
		m.engine.Reset()
		m.runSaved = false
		m.startedAt = time.Time{}
		state = sim.StateIdle
	}

	if m.frame.HasSteer {
		if h, ok := m.ctrl.Heading(m.frame.Steer); ok {
			m.engine.SetHeading(h)
		}
	}

	if m.frame.Has(core.ActionStart) {
		// Space with no steering toggles pause; steering input (pointer
		// down / drag) always means "keep moving".
		if state == sim.StateRunning && !m.frame.HasSteer {
			m.engine.SetRunning(false)
		} else {
			m.engine.SetRunning(true)
			if m.startedAt.IsZero() {
				m.startedAt = time.Now()
			}
		}
	}
	if m.frame.Has(core.ActionPause) || m.frame.Has(core.ActionRelease) {
		m.engine.SetRunning(false)
	}
	if m.frame.Has(core.ActionSpeed) {
		m.engine.CycleSpeed()
	}

	m.engine.Advance()

	// Record the finished run once per game over.
	snap := m.engine.Snapshot()
	if snap.State == sim.StateGameOver && !m.runSaved {
		if m.store != nil && snap.Score > 0 {
			duration := 0
			if !m.startedAt.IsZero() {
				duration = int(time.Since(m.startedAt).Seconds())
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(snap.Score, len(snap.Snake), duration)
		}
		m.runSaved = true
	}

	m.frame.Clear()

	return m, simTickCmd(m.cfg.TickRate)
}

// View renders the latest snapshot plus the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.engine.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program for a local terminal session.
func Run(engine *sim.Engine, ctrl *steer.Controller, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(engine, ctrl, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer steering needs drag events
	)

	_, err := p.Run()
	return err
}

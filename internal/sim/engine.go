// Package sim implements the slither simulation: continuous snake motion
// on a toroidal plane, food pickup, self-collision and the run-state
// machine. The package contains pure logic with no rendering or input
// dependencies; the platform drives it with fixed-rate Advance calls and
// reads consistent snapshots back.
package sim

import (
	"math"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-slither/internal/core"
)

// Params are the gameplay tunables. Distances are in world units, where
// one unit corresponds to one logical cell of the grid.
type Params struct {
	GridSize      int     // World is [0, GridSize) on each axis
	TickRate      int     // Advance calls per second
	InitialLength int     // Snake length after Reset
	InitialSpeed  float64 // Travel speed in units per second
	MinSpeed      float64 // Lower bound of the speed cycle
	MaxSpeed      float64 // Upper bound of the speed cycle
	SpeedStep     float64 // Increment applied by CycleSpeed
	EatRadius     float64 // Head-to-food distance that counts as eating
	CollideRadius float64 // Head-to-segment distance that ends the game
	HeadExempt    int     // Leading segments excluded from self-collision
	FoodClearance float64 // Minimum food-to-snake distance when placing
	FoodAttempts  int     // Placement samples before the fallback
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		GridSize:      50,
		TickRate:      30,
		InitialLength: 4,
		InitialSpeed:  6,
		MinSpeed:      2,
		MaxSpeed:      12,
		SpeedStep:     2,
		EatRadius:     0.5,
		CollideRadius: 0.3,
		HeadExempt:    3,
		FoodClearance: 0.8,
		FoodAttempts:  1000,
	}
}

// State is the engine run state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RecordKeeper persists the best score across games and restarts.
// Saves are fire-and-forget: the engine ignores the error and the
// implementation is expected to log failures itself. Gameplay never
// depends on persistence succeeding.
type RecordKeeper interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
}

// Engine owns the full simulation state. All methods are safe for
// concurrent use: ticks are serialized and snapshot reads never observe
// a mid-mutation snake.
type Engine struct {
	mu  sync.Mutex
	p   Params
	rng *rand.Rand

	snake   []core.Vec2 // Head at index 0
	heading core.Vec2
	food    core.Vec2

	score int
	best  int
	state State

	speed    float64 // units per second
	stepDist float64 // units per tick, speed / tick rate
	ticks    uint64  // applied simulation steps

	records RecordKeeper
}

// New creates an engine with the given params and RNG seed and resets it
// into the Idle state.
func New(p Params, seed int64) *Engine {
	e := &Engine{
		p:   p,
		rng: rand.New(rand.NewSource(seed)),
	}
	e.Reset()
	return e
}

// AttachRecords wires the persistence collaborator and loads the stored
// best score. A load failure leaves best at its current value.
func (e *Engine) AttachRecords(rk RecordKeeper) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.records = rk
	if rk == nil {
		return
	}
	if b, err := rk.BestScore(); err == nil && b > e.best {
		e.best = b
	}
}

// Reset reinitializes the game: a fresh snake centered in the grid,
// heading +X, score 0, new food, state Idle. Callable from any state,
// including GameOver. The best score survives resets.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	center := float64(e.p.GridSize) / 2
	e.snake = make([]core.Vec2, e.p.InitialLength)
	for i := range e.snake {
		// Head first, body trailing toward -X.
		e.snake[i] = core.V(center-float64(i), center)
	}
	e.heading = core.V(1, 0)
	e.score = 0
	e.ticks = 0
	e.state = StateIdle
	e.setSpeedLocked(e.p.InitialSpeed)
	e.placeFood()
}

// SetRunning starts or pauses movement. Starting from Idle or Paused
// moves to Running; stopping from Running moves to Paused. It is a no-op
// from GameOver; only Reset leaves that state.
func (e *Engine) SetRunning(run bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateGameOver {
		return
	}
	if run {
		e.state = StateRunning
	} else if e.state == StateRunning {
		e.state = StatePaused
	}
}

// SetHeading stores the travel direction. Callers pass the motion
// controller's output, which is already a unit vector.
func (e *Engine) SetHeading(h core.Vec2) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.heading = h
}

// SetSpeed updates the travel speed and the per-tick step distance.
// It touches neither the heading nor the run state.
func (e *Engine) SetSpeed(unitsPerSecond float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setSpeedLocked(unitsPerSecond)
}

// CycleSpeed bumps the speed by SpeedStep, wrapping from MaxSpeed back
// to MinSpeed. Returns the new speed.
func (e *Engine) CycleSpeed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.speed + e.p.SpeedStep
	if v > e.p.MaxSpeed {
		v = e.p.MinSpeed
	}
	e.setSpeedLocked(v)
	return e.speed
}

func (e *Engine) setSpeedLocked(unitsPerSecond float64) {
	e.speed = unitsPerSecond
	e.stepDist = unitsPerSecond / float64(e.p.TickRate)
}

// Advance runs one fixed simulation tick. It is a no-op unless the
// engine is Running. The scheduler calls it once per tick period;
// overlapping calls serialize on the engine mutex.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateRunning {
		return
	}
	e.ticks++

	newHead := e.wrap(e.snake[0].Add(e.heading.Scale(e.stepDist)))
	e.snake = append([]core.Vec2{newHead}, e.snake...)

	if newHead.Dist(e.food) < e.p.EatRadius {
		// Keep the tail: the snake grows by one segment this tick.
		e.score++
		e.placeFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	// The first HeadExempt entries (head plus the leading trailing
	// segments) are always within CollideRadius right after a turn and
	// would false-positive, so the scan starts past them.
	for i := e.p.HeadExempt; i < len(e.snake); i++ {
		if e.snake[i].Dist(newHead) < e.p.CollideRadius {
			e.gameOver()
			return
		}
	}
}

// gameOver transitions to the terminal state and publishes a new record
// if one was set. Called with the mutex held.
func (e *Engine) gameOver() {
	e.state = StateGameOver
	if e.score > e.best {
		e.best = e.score
		if e.records != nil {
			//nolint:errcheck // Fire-and-forget; the keeper logs failures
			e.records.SaveBestScore(e.best)
		}
	}
}

// wrap maps a position back onto the torus, each axis into [0, GridSize).
func (e *Engine) wrap(v core.Vec2) core.Vec2 {
	g := float64(e.p.GridSize)
	return core.V(wrapAxis(v.X, g), wrapAxis(v.Y, g))
}

func wrapAxis(x, size float64) float64 {
	x = math.Mod(x, size)
	if x < 0 {
		x += size
	}
	// Adding size to a tiny negative remainder can round to exactly
	// size; fold the boundary back so the result stays in [0, size).
	if x >= size {
		x = 0
	}
	return x
}

package sim

import "github.com/vovakirdan/tui-slither/internal/core"

// Snapshot is the read-only view handed to the renderer once per frame.
// The snake slice is a deep copy taken under the engine mutex, so a
// frame never observes a mid-tick mutation.
type Snapshot struct {
	Snake    []core.Vec2 // Head at index 0
	Food     core.Vec2
	GridSize int
	State    State
	Score    int
	Best     int
	Speed    float64 // units per second
	Ticks    uint64
}

// Snapshot returns a consistent copy of the current simulation state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snake := make([]core.Vec2, len(e.snake))
	copy(snake, e.snake)

	return Snapshot{
		Snake:    snake,
		Food:     e.food,
		GridSize: e.p.GridSize,
		State:    e.state,
		Score:    e.score,
		Best:     e.best,
		Speed:    e.speed,
		Ticks:    e.ticks,
	}
}

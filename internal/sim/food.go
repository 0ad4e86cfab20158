package sim

import "github.com/vovakirdan/tui-slither/internal/core"

// placeFood samples random positions until one is at least FoodClearance
// away from every snake segment, bounded at FoodAttempts tries. When the
// board is nearly full and every attempt is rejected, the final fallback
// takes one unconditional sample regardless of overlap. That imperfection
// is deliberate and kept: it guarantees termination and exactly one food
// item, at the cost of a possibly-overlapping spawn on a packed board.
//
// Called with the engine mutex held.
func (e *Engine) placeFood() {
	g := float64(e.p.GridSize)

	for range e.p.FoodAttempts {
		candidate := core.V(e.rng.Float64()*g, e.rng.Float64()*g)
		if e.clearOfSnake(candidate) {
			e.food = candidate
			return
		}
	}

	e.food = core.V(e.rng.Float64()*g, e.rng.Float64()*g)
}

// clearOfSnake reports whether p keeps FoodClearance distance from every
// snake segment.
func (e *Engine) clearOfSnake(p core.Vec2) bool {
	for _, seg := range e.snake {
		if seg.Dist(p) < e.p.FoodClearance {
			return false
		}
	}
	return true
}

package tui

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slither/internal/sim"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

// scoreKeeper adapts the sqlite store to the engine's RecordKeeper
// contract. Persistence failures are logged and swallowed here so they
// never reach the running simulation; a nil store disables persistence
// entirely.
type scoreKeeper struct {
	store  *storage.Store
	logger *log.Logger
}

// NewScoreKeeper wraps a store (possibly nil) for the engine.
func NewScoreKeeper(store *storage.Store) sim.RecordKeeper {
	return &scoreKeeper{
		store: store,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "slither",
		}),
	}
}

// BestScore loads the stored record, 0 when no store is attached.
func (k *scoreKeeper) BestScore() (int, error) {
	if k.store == nil {
		return 0, nil
	}
	best, err := k.store.BestScore()
	if err != nil {
		k.logger.Warn("could not load best score", "error", err)
		return 0, nil
	}
	return best, nil
}

// SaveBestScore persists a new record, fire-and-forget.
func (k *scoreKeeper) SaveBestScore(score int) error {
	if k.store == nil {
		return nil
	}
	if err := k.store.SaveBestScore(score); err != nil {
		k.logger.Warn("could not save best score", "error", err)
	}
	return nil
}

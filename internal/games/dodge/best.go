package dodge

import (
	"io"

	"github.com/charmbracelet/log"
)

// BestStore persists the best score between sessions.
type BestStore interface {
	LoadBest() (float64, error)
	SaveBest(best float64) error
}

// BestTracker holds the session's best score and writes improvements
// through to a BestStore. Storage failures are logged and otherwise ignored;
// the in-memory best is always kept.
type BestTracker struct {
	best   float64
	store  BestStore
	logger *log.Logger
}

// NewBestTracker loads the stored best. A nil store keeps the best in memory
// only; a nil logger discards warnings.
func NewBestTracker(store BestStore, logger *log.Logger) *BestTracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &BestTracker{store: store, logger: logger}
	if store == nil {
		return b
	}

	best, err := store.LoadBest()
	if err != nil {
		logger.Warn("failed to load best score", "error", err)
		return b
	}
	if best > 0 {
		b.best = best
	}
	return b
}

// Best returns the best score seen so far.
func (b *BestTracker) Best() float64 {
	return b.best
}

// Record updates the best if final is strictly greater and reports whether
// it did.
func (b *BestTracker) Record(final float64) bool {
	if final <= b.best {
		return false
	}
	b.best = final

	if b.store != nil {
		if err := b.store.SaveBest(final); err != nil {
			b.logger.Warn("failed to save best score", "best", final, "error", err)
		}
	}
	return true
}

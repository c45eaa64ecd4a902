package repo

import (
	"context"
	"errors"
	"time"

	"github.com/workdesk/workdesk/internal/modules/model"
)

// ErrDuplicateKey is returned when a write collides with a unique field.
var ErrDuplicateKey = errors.New("duplicate key")

// Filter is a set of exact-match conditions keyed by column name.
type Filter map[string]any

// Store persists one entity kind. Misses are reported as a nil entity with a
// nil error; only validation and unique-key failures are errors.
type Store[E any] interface {
	Create(ctx context.Context, e *E) error
	Get(ctx context.Context, id uint) (*E, error)
	List(ctx context.Context, f Filter) ([]E, error)
	FindOne(ctx context.Context, column string, value any) (*E, error)
	Update(ctx context.Context, id uint, p model.Patch[E]) (*E, error)
	Delete(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// Clock returns the current time. Stores stamp CreatedAt and lifecycle
// timestamps from it.
type Clock func() time.Time

// mergePatch applies p to e. The first time p moves the status into the
// kind's terminal value the lifecycle timestamp is stamped. It is written
// once: leaving the terminal status keeps it, and re-entering does not move it.
func mergePatch[E any, P model.RecordPtr[E]](e *E, p model.Patch[E], now time.Time) error {
	if lc, ok := any(e).(model.Lifecycle); ok {
		s := p.StatusChange()
		entering := s != nil && *s == lc.TerminalStatus() && lc.CurrentStatus() != lc.TerminalStatus()
		if entering && lc.TerminalAt() == nil {
			lc.MarkTerminal(now)
		}
	}
	p.Apply(e)
	return P(e).Validate()
}

func matches[E any, P model.RecordPtr[E]](e *E, f Filter) bool {
	for col, want := range f {
		got, ok := P(e).Field(col)
		if !ok || got != want {
			return false
		}
	}
	return true
}

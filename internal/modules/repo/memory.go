package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/workdesk/workdesk/internal/modules/model"
)

type memoryStore[E any, P model.RecordPtr[E]] struct {
	mu     sync.RWMutex
	rows   map[uint]*E
	order  []uint
	lastID uint
	now    Clock
}

// NewMemoryStore returns a process-local Store. Data does not survive a
// restart. Ids come from a per-store counter and are never reused.
func NewMemoryStore[E any, P model.RecordPtr[E]](now Clock) Store[E] {
	if now == nil {
		now = time.Now
	}
	return &memoryStore[E, P]{rows: map[uint]*E{}, now: now}
}

func (s *memoryStore[E, P]) Create(ctx context.Context, e *E) error {
	P(e).Prepare(s.now())
	if err := P(e).Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(e, 0); err != nil {
		return err
	}
	s.lastID++
	P(e).SetID(s.lastID)
	row := *e
	s.rows[s.lastID] = &row
	s.order = append(s.order, s.lastID)
	return nil
}

func (s *memoryStore[E, P]) Get(ctx context.Context, id uint) (*E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	out := *row
	return &out, nil
}

func (s *memoryStore[E, P]) List(ctx context.Context, f Filter) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]E, 0, len(s.order))
	for _, id := range s.order {
		row := s.rows[id]
		if matches[E, P](row, f) {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *memoryStore[E, P]) FindOne(ctx context.Context, column string, value any) (*E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		row := s.rows[id]
		if matches[E, P](row, Filter{column: value}) {
			out := *row
			return &out, nil
		}
	}
	return nil, nil
}

func (s *memoryStore[E, P]) Update(ctx context.Context, id uint, p model.Patch[E]) (*E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	next := *row
	if err := mergePatch[E, P](&next, p, s.now()); err != nil {
		return nil, err
	}
	if err := s.checkUnique(&next, id); err != nil {
		return nil, err
	}
	s.rows[id] = &next
	out := next
	return &out, nil
}

func (s *memoryStore[E, P]) Delete(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *memoryStore[E, P]) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.rows)), nil
}

// checkUnique must be called with the write lock held. self is the id of
// the row being replaced, or 0 on insert.
func (s *memoryStore[E, P]) checkUnique(e *E, self uint) error {
	u, ok := any(e).(model.Uniquer)
	if !ok {
		return nil
	}
	for _, col := range u.UniqueFields() {
		want, ok := P(e).Field(col)
		if !ok {
			continue
		}
		for id, row := range s.rows {
			if id == self {
				continue
			}
			if got, ok := P(row).Field(col); ok && got == want {
				return fmt.Errorf("%s %v: %w", col, want, ErrDuplicateKey)
			}
		}
	}
	return nil
}

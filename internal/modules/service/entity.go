package service

import (
	"context"
	"errors"
	"time"

	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/repo"
	"go.uber.org/zap"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent describes a committed write to one entity.
type ChangeEvent struct {
	Kind   string    `json:"kind"`
	Action string    `json:"action"`
	ID     uint      `json:"id"`
	At     time.Time `json:"at"`
}

// EventPublisher receives change events after a write commits.
type EventPublisher interface {
	Publish(ctx context.Context, ev ChangeEvent) error
}

// SnapshotInvalidator drops any cached dashboard snapshot.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// WriteObserver is notified of every committed write, e.g. for metrics.
type WriteObserver func(kind, action string)

type EntityService[E any] interface {
	Kind() string
	Create(ctx context.Context, e *E) error
	GetByID(ctx context.Context, id uint) (*E, error)
	List(ctx context.Context, f repo.Filter) ([]E, error)
	Update(ctx context.Context, id uint, p model.Patch[E]) (*E, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// Hooks customise an entity service for one kind.
type Hooks[E any] struct {
	BeforeCreate func(ctx context.Context, e *E) error
	BeforeUpdate func(ctx context.Context, p model.Patch[E]) (model.Patch[E], error)
	// Present shapes every entity returned to callers.
	Present func(e *E)
}

// Deps carries the side channels shared by all entity services. Every
// field is optional.
type Deps struct {
	Log       *zap.Logger
	Events    EventPublisher
	Snapshots SnapshotInvalidator
	Observe   WriteObserver
	Now       func() time.Time
}

type entityService[E any] struct {
	kind  string
	r     repo.Store[E]
	deps  Deps
	hooks Hooks[E]
	idOf  func(*E) uint
}

func NewEntityService[E any, P model.RecordPtr[E]](kind string, r repo.Store[E], deps Deps, hooks Hooks[E]) EntityService[E] {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &entityService[E]{
		kind:  kind,
		r:     r,
		deps:  deps,
		hooks: hooks,
		idOf:  func(e *E) uint { return P(e).GetID() },
	}
}

func (s *entityService[E]) Kind() string { return s.kind }

func (s *entityService[E]) Create(ctx context.Context, e *E) error {
	if s.hooks.BeforeCreate != nil {
		if err := s.hooks.BeforeCreate(ctx, e); err != nil {
			return err
		}
	}
	if err := s.r.Create(ctx, e); err != nil {
		return err
	}
	s.committed(ctx, ActionCreated, s.idOf(e))
	s.present(e)
	return nil
}

func (s *entityService[E]) GetByID(ctx context.Context, id uint) (*E, error) {
	if id == 0 {
		return nil, errors.New("id is empty")
	}
	e, err := s.r.Get(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	s.present(e)
	return e, nil
}

func (s *entityService[E]) List(ctx context.Context, f repo.Filter) ([]E, error) {
	items, err := s.r.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.present(&items[i])
	}
	return items, nil
}

func (s *entityService[E]) Update(ctx context.Context, id uint, p model.Patch[E]) (*E, error) {
	if id == 0 {
		return nil, errors.New("id is empty")
	}
	if s.hooks.BeforeUpdate != nil {
		var err error
		if p, err = s.hooks.BeforeUpdate(ctx, p); err != nil {
			return nil, err
		}
	}
	e, err := s.r.Update(ctx, id, p)
	if err != nil || e == nil {
		return nil, err
	}
	s.committed(ctx, ActionUpdated, id)
	s.present(e)
	return e, nil
}

func (s *entityService[E]) Delete(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, errors.New("id is empty")
	}
	ok, err := s.r.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.committed(ctx, ActionDeleted, id)
	return true, nil
}

func (s *entityService[E]) present(e *E) {
	if s.hooks.Present != nil {
		s.hooks.Present(e)
	}
}

// committed runs the post-write side channels. The write is already durable,
// so failures here are logged and never returned.
func (s *entityService[E]) committed(ctx context.Context, action string, id uint) {
	if s.deps.Observe != nil {
		s.deps.Observe(s.kind, action)
	}
	if s.deps.Snapshots != nil {
		if err := s.deps.Snapshots.Invalidate(ctx); err != nil {
			s.deps.Log.Sugar().Warnw("invalidate dashboard snapshot", "kind", s.kind, "err", err)
		}
	}
	if s.deps.Events != nil {
		ev := ChangeEvent{Kind: s.kind, Action: action, ID: id, At: s.deps.Now()}
		if err := s.deps.Events.Publish(ctx, ev); err != nil {
			s.deps.Log.Sugar().Warnw("publish change event", "kind", s.kind, "action", action, "id", id, "err", err)
		}
	}
}

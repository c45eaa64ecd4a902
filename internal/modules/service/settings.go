package service

import (
	"context"
	"sync"

	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/repo"
)

type SettingsService interface {
	Get(ctx context.Context) (*model.CompanySettings, error)
	Update(ctx context.Context, p model.CompanySettingsPatch) (*model.CompanySettings, error)
}

type settingsService struct {
	// mu serialises the lazy first insert so only one row is ever created.
	mu  sync.Mutex
	r   repo.Store[model.CompanySettings]
	svc EntityService[model.CompanySettings]
}

func NewSettingsService(r repo.Store[model.CompanySettings], deps Deps) SettingsService {
	return &settingsService{
		r:   r,
		svc: NewEntityService[model.CompanySettings](KindSettings, r, deps, Hooks[model.CompanySettings]{}),
	}
}

// Get returns the singleton, creating it with defaults on first read.
func (s *settingsService) Get(ctx context.Context) (*model.CompanySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreate(ctx)
}

func (s *settingsService) Update(ctx context.Context, p model.CompanySettingsPatch) (*model.CompanySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return s.svc.Update(ctx, cur.ID, p)
}

func (s *settingsService) getOrCreate(ctx context.Context) (*model.CompanySettings, error) {
	rows, err := s.r.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		return &rows[0], nil
	}
	cs := &model.CompanySettings{}
	if err := s.svc.Create(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

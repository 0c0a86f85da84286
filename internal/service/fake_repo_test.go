package service

import (
	"context"
	"sort"
	"sync"

	"github.com/vibe-gaming/clan-api/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memClans is an in-memory repository.Clans used to exercise service behavior.
type memClans struct {
	mu    sync.Mutex
	clans []domain.Clan
}

func (m *memClans) Create(_ context.Context, clan *domain.Clan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clans = append(m.clans, *clan)
	return nil
}

func (m *memClans) CreateBatch(_ context.Context, clans []domain.Clan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clans = append(m.clans, clans...)
	return nil
}

func (m *memClans) GetAll(_ context.Context, filter domain.ClanFilter) ([]domain.Clan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []domain.Clan{}
	for _, c := range m.clans {
		if filter.Region != nil && (c.Region == nil || *c.Region != *filter.Region) {
			continue
		}
		out = append(out, c)
	}

	switch filter.Sort {
	case domain.SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case domain.SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (m *memClans) GetOneByID(_ context.Context, id uuid.UUID) (*domain.Clan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clans {
		if c.ID == id {
			clan := c
			return &clan, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memClans) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.clans {
		if c.ID == id {
			m.clans = append(m.clans[:i], m.clans[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// mockClans is a testify mock for failure paths.
type mockClans struct {
	mock.Mock
}

func (m *mockClans) Create(ctx context.Context, clan *domain.Clan) error {
	return m.Called(ctx, clan).Error(0)
}

func (m *mockClans) CreateBatch(ctx context.Context, clans []domain.Clan) error {
	return m.Called(ctx, clans).Error(0)
}

func (m *mockClans) GetAll(ctx context.Context, filter domain.ClanFilter) ([]domain.Clan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Clan), args.Error(1)
}

func (m *mockClans) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Clan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Clan), args.Error(1)
}

func (m *mockClans) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

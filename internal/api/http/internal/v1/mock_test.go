package v1

import (
	"context"

	"github.com/vibe-gaming/clan-api/internal/domain"
	"github.com/vibe-gaming/clan-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type clansMock struct {
	mock.Mock
}

func (m *clansMock) Create(ctx context.Context, input service.ClanCreate) (*domain.Clan, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Clan), args.Error(1)
}

func (m *clansMock) GetAll(ctx context.Context, filter domain.ClanFilter) ([]domain.Clan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Clan), args.Error(1)
}

func (m *clansMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Clan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Clan), args.Error(1)
}

func (m *clansMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type clanFilesMock struct {
	mock.Mock
}

func (m *clanFilesMock) Import(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *clanFilesMock) Export(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *clanFilesMock) ImportFile(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func (m *clanFilesMock) ExportFile(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

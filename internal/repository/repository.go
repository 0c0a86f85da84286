package repository

import (
	"context"

	"github.com/vibe-gaming/clan-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Clans Clans
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Clans: newClanRepository(db),
	}
}

type Clans interface {
	Create(ctx context.Context, clan *domain.Clan) error
	CreateBatch(ctx context.Context, clans []domain.Clan) error
	GetAll(ctx context.Context, filter domain.ClanFilter) ([]domain.Clan, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Clan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

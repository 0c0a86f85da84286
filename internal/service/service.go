package service

import (
	"context"

	"github.com/vibe-gaming/clan-api/internal/config"
	"github.com/vibe-gaming/clan-api/internal/domain"
	"github.com/vibe-gaming/clan-api/internal/repository"

	"github.com/google/uuid"
)

type Services struct {
	Clans     Clans
	ClanFiles ClanFiles
}

type Deps struct {
	Config *config.Config
	Repos  *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Clans:     newClanService(deps.Repos.Clans),
		ClanFiles: newClanCSVService(deps.Repos.Clans, deps.Config.CSV),
	}
}

type ClanCreate struct {
	Name   string
	Region *string
}

type Clans interface {
	Create(ctx context.Context, input ClanCreate) (*domain.Clan, error)
	GetAll(ctx context.Context, filter domain.ClanFilter) ([]domain.Clan, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Clan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClanFiles moves clans between the store and server-local CSV files.
type ClanFiles interface {
	Import(ctx context.Context) (int, error)
	Export(ctx context.Context) (int, error)
	ImportFile(ctx context.Context, path string) (int, error)
	ExportFile(ctx context.Context, path string) (int, error)
}

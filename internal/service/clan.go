package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vibe-gaming/clan-api/internal/domain"
	"github.com/vibe-gaming/clan-api/internal/repository"
	"github.com/vibe-gaming/clan-api/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type clanService struct {
	clanRepository repository.Clans
}

func newClanService(clanRepository repository.Clans) *clanService {
	return &clanService{
		clanRepository: clanRepository,
	}
}

func (s *clanService) Create(ctx context.Context, input ClanCreate) (*domain.Clan, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrClanNameRequired
	}

	clan := domain.NewClan(input.Name, input.Region)
	if err := s.clanRepository.Create(ctx, &clan); err != nil {
		return nil, fmt.Errorf("create clan failed: %w", err)
	}

	logger.Debug("clan created", zap.String("id", clan.ID.String()), zap.String("name", clan.Name))

	return &clan, nil
}

func (s *clanService) GetAll(ctx context.Context, filter domain.ClanFilter) ([]domain.Clan, error) {
	switch filter.Sort {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return nil, fmt.Errorf("unknown sort order %q", filter.Sort)
	}
	return s.clanRepository.GetAll(ctx, filter)
}

func (s *clanService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Clan, error) {
	clan, err := s.clanRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrClanNotFound
		}
		return nil, err
	}
	return clan, nil
}

func (s *clanService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clanRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrClanNotFound
		}
		return err
	}

	logger.Info("clan deleted", zap.String("id", id.String()))

	return nil
}

package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/Jakealex/fantasy-league/internal/domain/player"
)

// PlayerService exposes the player reads the API layer needs, mainly for
// attaching names to scoring output.
type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) GetPlayer(ctx context.Context, id string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	pl, ok, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, crerr.Wrap(err, "get player")
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, id)
	}
	return pl, nil
}

func (s *PlayerService) ListPlayersByIDs(ctx context.Context, ids []string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByIDs")
	defer span.End()

	players, err := s.playerRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, crerr.Wrap(err, "list players by ids")
	}
	return players, nil
}

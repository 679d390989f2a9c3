package memory

import (
	"context"
	"sync"

	"github.com/Jakealex/fantasy-league/internal/domain/player"
)

type PlayerRepository struct {
	mu            sync.RWMutex
	playersByTeam map[string][]player.Player
	index         map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	playersByTeam := make(map[string][]player.Player)
	index := make(map[string]player.Player, len(players))

	for _, p := range players {
		playersByTeam[p.TeamName] = append(playersByTeam[p.TeamName], p)
		index[p.ID] = p
	}

	return &PlayerRepository{
		playersByTeam: playersByTeam,
		index:         index,
	}
}

func (r *PlayerRepository) ListByTeamName(_ context.Context, teamName string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := r.playersByTeam[teamName]
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[id]
	return p, ok, nil
}

func (r *PlayerRepository) ListByIDs(_ context.Context, ids []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

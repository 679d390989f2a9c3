package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Jakealex/fantasy-league/internal/domain/gameweek"
)

type GameweekRepository struct {
	mu    sync.RWMutex
	items map[string]gameweek.Gameweek
}

func NewGameweekRepository(gameweeks []gameweek.Gameweek) *GameweekRepository {
	items := make(map[string]gameweek.Gameweek, len(gameweeks))
	for _, gw := range gameweeks {
		items[gw.ID] = gw
	}
	return &GameweekRepository{items: items}
}

func (r *GameweekRepository) GetByID(_ context.Context, id string) (gameweek.Gameweek, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gw, ok := r.items[id]
	return gw, ok, nil
}

func (r *GameweekRepository) List(_ context.Context) ([]gameweek.Gameweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameweek.Gameweek, 0, len(r.items))
	for _, gw := range r.items {
		out = append(out, gw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

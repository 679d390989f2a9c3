package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Jakealex/fantasy-league/internal/domain/scoring"
)

type ScoringRepository struct {
	mu           sync.RWMutex
	playerPoints map[string]scoring.PlayerPoints
	scores       map[string]scoring.GameweekScore
}

func NewScoringRepository() *ScoringRepository {
	return &ScoringRepository{
		playerPoints: make(map[string]scoring.PlayerPoints),
		scores:       make(map[string]scoring.GameweekScore),
	}
}

func (r *ScoringRepository) UpsertPlayerPoints(_ context.Context, row scoring.PlayerPoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.playerPoints[row.PlayerID+"\x00"+row.GameweekID] = row
	return nil
}

func (r *ScoringRepository) ListPlayerPointsByGameweek(_ context.Context, gameweekID string) ([]scoring.PlayerPoints, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.PlayerPoints, 0)
	for _, row := range r.playerPoints {
		if row.GameweekID == gameweekID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *ScoringRepository) UpsertGameweekScore(_ context.Context, row scoring.GameweekScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scores[row.TeamID+"\x00"+row.GameweekID] = row
	return nil
}

func (r *ScoringRepository) ListGameweekScoresByGameweek(_ context.Context, gameweekID string) ([]scoring.GameweekScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.GameweekScore, 0)
	for _, row := range r.scores {
		if row.GameweekID == gameweekID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out, nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Jakealex/fantasy-league/internal/domain/team"
)

type TeamRepository struct {
	mu          sync.RWMutex
	teams       []team.Team
	slotsByTeam map[string][]team.SquadSlot
}

func NewTeamRepository(teams []team.Team, slots []team.SquadSlot) *TeamRepository {
	slotsByTeam := make(map[string][]team.SquadSlot)
	for _, slot := range slots {
		slotsByTeam[slot.TeamID] = append(slotsByTeam[slot.TeamID], slot)
	}

	sorted := append([]team.Team(nil), teams...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &TeamRepository{
		teams:       sorted,
		slotsByTeam: slotsByTeam,
	}
}

func (r *TeamRepository) ListTeams(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)
	return out, nil
}

func (r *TeamRepository) ListSlotsByTeam(_ context.Context, teamID string) ([]team.SquadSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slots := r.slotsByTeam[teamID]
	out := make([]team.SquadSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.PlayerID != nil {
			v := *slot.PlayerID
			slot.PlayerID = &v
		}
		out = append(out, slot)
	}
	return out, nil
}

package memory

import (
	"time"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	"github.com/Jakealex/fantasy-league/internal/domain/gameweek"
	"github.com/Jakealex/fantasy-league/internal/domain/player"
	"github.com/Jakealex/fantasy-league/internal/domain/team"
)

const (
	GameweekID1 = "gw-2026-01"
	GameweekID2 = "gw-2026-02"
)

func SeedGameweeks() []gameweek.Gameweek {
	return []gameweek.Gameweek{
		{
			ID:         GameweekID1,
			Number:     1,
			Deadline:   time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC),
			IsCurrent:  false,
			IsFinished: true,
		},
		{
			ID:        GameweekID2,
			Number:    2,
			Deadline:  time.Date(2026, 2, 21, 11, 0, 0, 0, time.UTC),
			IsCurrent: true,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-lio-gk", Name: "Marco Delgado", TeamName: "Lions", Position: player.PositionGoalkeeper, Price: 90, Status: player.StatusActive},
		{ID: "pl-lio-01", Name: "Jonas Becker", TeamName: "Lions", Position: player.PositionOutfield, Price: 88, Status: player.StatusActive},
		{ID: "pl-lio-02", Name: "Tomas Oliveira", TeamName: "Lions", Position: player.PositionOutfield, Price: 95, Status: player.StatusActive},
		{ID: "pl-lio-03", Name: "Sandro Vidal", TeamName: "Lions", Position: player.PositionOutfield, Price: 102, Status: player.StatusActive},
		{ID: "pl-tig-gk", Name: "Ivan Petrov", TeamName: "Tigers", Position: player.PositionGoalkeeper, Price: 86, Status: player.StatusActive},
		{ID: "pl-tig-01", Name: "Karim Benali", TeamName: "Tigers", Position: player.PositionOutfield, Price: 91, Status: player.StatusActive},
		{ID: "pl-tig-02", Name: "Luca Moretti", TeamName: "Tigers", Position: player.PositionOutfield, Price: 97, Status: player.StatusActive},
		{ID: "pl-tig-03", Name: "Diego Fuentes", TeamName: "Tigers", Position: player.PositionOutfield, Price: 104, Status: player.StatusInjured},
		{ID: "pl-bea-gk", Name: "Anders Holm", TeamName: "Bears", Position: player.PositionGoalkeeper, Price: 84, Status: player.StatusActive},
		{ID: "pl-bea-01", Name: "Pavel Novak", TeamName: "Bears", Position: player.PositionOutfield, Price: 87, Status: player.StatusActive},
		{ID: "pl-bea-02", Name: "Emre Yilmaz", TeamName: "Bears", Position: player.PositionOutfield, Price: 93, Status: player.StatusActive},
		{ID: "pl-wol-gk", Name: "Felix Brandt", TeamName: "Wolves", Position: player.PositionGoalkeeper, Price: 82, Status: player.StatusActive},
		{ID: "pl-wol-01", Name: "Mateo Silva", TeamName: "Wolves", Position: player.PositionOutfield, Price: 89, Status: player.StatusActive},
		{ID: "pl-wol-02", Name: "Noah Lindqvist", TeamName: "Wolves", Position: player.PositionOutfield, Price: 96, Status: player.StatusActive},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:         "fx-001",
			GameweekID: GameweekID1,
			HomeTeam:   "Lions",
			AwayTeam:   "Tigers",
			KickoffAt:  time.Date(2026, 2, 14, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:         "fx-002",
			GameweekID: GameweekID1,
			HomeTeam:   "Bears",
			AwayTeam:   "Wolves",
			KickoffAt:  time.Date(2026, 2, 14, 17, 30, 0, 0, time.UTC),
		},
		{
			ID:         "fx-003",
			GameweekID: GameweekID2,
			HomeTeam:   "Tigers",
			AwayTeam:   "Bears",
			KickoffAt:  time.Date(2026, 2, 21, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:         "fx-004",
			GameweekID: GameweekID2,
			HomeTeam:   "Wolves",
			AwayTeam:   "Lions",
			KickoffAt:  time.Date(2026, 2, 21, 17, 30, 0, 0, time.UTC),
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-aurora", Name: "Aurora XI"},
		{ID: "team-citadel", Name: "Citadel FC"},
	}
}

func SeedSquadSlots() []team.SquadSlot {
	ref := func(id string) *string { return &id }
	return []team.SquadSlot{
		{ID: "slot-aurora-1", TeamID: "team-aurora", Label: "GK", PlayerID: ref("pl-lio-gk")},
		{ID: "slot-aurora-2", TeamID: "team-aurora", Label: "OUT1", PlayerID: ref("pl-lio-02"), IsCaptain: true},
		{ID: "slot-aurora-3", TeamID: "team-aurora", Label: "OUT2", PlayerID: ref("pl-tig-01")},
		{ID: "slot-aurora-4", TeamID: "team-aurora", Label: "OUT3", PlayerID: ref("pl-bea-01")},
		{ID: "slot-aurora-5", TeamID: "team-aurora", Label: "OUT4", PlayerID: ref("pl-wol-01")},
		{ID: "slot-citadel-1", TeamID: "team-citadel", Label: "GK", PlayerID: ref("pl-tig-gk")},
		{ID: "slot-citadel-2", TeamID: "team-citadel", Label: "OUT1", PlayerID: ref("pl-tig-02")},
		{ID: "slot-citadel-3", TeamID: "team-citadel", Label: "OUT2", PlayerID: ref("pl-bea-02")},
		{ID: "slot-citadel-4", TeamID: "team-citadel", Label: "OUT3", PlayerID: ref("pl-wol-02")},
		{ID: "slot-citadel-5", TeamID: "team-citadel", Label: "OUT4"},
	}
}

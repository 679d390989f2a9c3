package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	"github.com/Jakealex/fantasy-league/internal/domain/player"
)

type sequenceIDGenerator struct {
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

func newFixtureServiceForTest(fixtures ...fixture.Fixture) (*FixtureService, *stubFixtureRepository, *stubScoringRepository) {
	fixtureRepo := newStubFixtureRepository(fixtures...)
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "player-x", Name: "X", TeamName: "Lions", Position: player.PositionOutfield},
	}}
	scoringRepo := newStubScoringRepository()
	scoringService := NewScoringService(testGameweekRepo(), fixtureRepo, playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)
	service := NewFixtureService(fixtureRepo, scoringService, &sequenceIDGenerator{}, nil)
	return service, fixtureRepo, scoringRepo
}

func TestRecordResult_TriggersRecompute(t *testing.T) {
	t.Parallel()

	service, fixtureRepo, scoringRepo := newFixtureServiceForTest(fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		Events: []fixture.ScoreEvent{
			{ID: "ev-1", FixtureID: "fx-a", PlayerID: "player-x", Kind: fixture.EventGoal},
		},
	})

	if err := service.RecordResult(context.Background(), "fx-a", 2, 1); err != nil {
		t.Fatalf("RecordResult error: %v", err)
	}

	fx, _, _ := fixtureRepo.GetByID(context.Background(), "fx-a")
	if fx.HomeGoals == nil || *fx.HomeGoals != 2 || fx.AwayGoals == nil || *fx.AwayGoals != 1 {
		t.Fatalf("result not stored: %+v", fx)
	}

	row, ok := scoringRepo.playerPointsFor("player-x", testGameweekID)
	if !ok {
		t.Fatal("expected recompute to produce player points")
	}
	if row.Points != 6 {
		t.Fatalf("unexpected points after recompute: got=%d want=6", row.Points)
	}
}

func TestRecordResult_NegativeGoals(t *testing.T) {
	t.Parallel()

	service, _, _ := newFixtureServiceForTest()

	err := service.RecordResult(context.Background(), "fx-a", -1, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecordResult_FixtureNotFound(t *testing.T) {
	t.Parallel()

	service, _, _ := newFixtureServiceForTest()

	err := service.RecordResult(context.Background(), "fx-missing", 1, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddEvent_UnsettledFixtureSkipsRecompute(t *testing.T) {
	t.Parallel()

	service, fixtureRepo, scoringRepo := newFixtureServiceForTest(fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
	})

	event, err := service.AddEvent(context.Background(), "fx-a", "player-x", fixture.EventGoal, nil)
	if err != nil {
		t.Fatalf("AddEvent error: %v", err)
	}
	if event.ID == "" {
		t.Fatal("expected a generated event id")
	}

	fx, _, _ := fixtureRepo.GetByID(context.Background(), "fx-a")
	if len(fx.Events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(fx.Events))
	}

	if _, ok := scoringRepo.playerPointsFor("player-x", testGameweekID); ok {
		t.Fatal("event on an unsettled fixture must not trigger scoring")
	}
}

func TestAddEvent_SettledFixtureRecomputes(t *testing.T) {
	t.Parallel()

	service, _, scoringRepo := newFixtureServiceForTest(fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(1),
		AwayGoals:  intPtr(0),
	})

	if _, err := service.AddEvent(context.Background(), "fx-a", "player-x", fixture.EventGoal, intPtr(55)); err != nil {
		t.Fatalf("AddEvent error: %v", err)
	}

	row, ok := scoringRepo.playerPointsFor("player-x", testGameweekID)
	if !ok {
		t.Fatal("expected recompute after event on settled fixture")
	}
	if row.Points != 6 {
		t.Fatalf("unexpected points: got=%d want=6", row.Points)
	}
}

func TestAddEvent_InvalidMinute(t *testing.T) {
	t.Parallel()

	service, _, _ := newFixtureServiceForTest(fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
	})

	_, err := service.AddEvent(context.Background(), "fx-a", "player-x", fixture.EventGoal, intPtr(200))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddEvent_FixtureNotFound(t *testing.T) {
	t.Parallel()

	service, _, _ := newFixtureServiceForTest()

	_, err := service.AddEvent(context.Background(), "fx-missing", "player-x", fixture.EventGoal, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteEvent_SettledFixtureRecomputes(t *testing.T) {
	t.Parallel()

	service, fixtureRepo, scoringRepo := newFixtureServiceForTest(fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(1),
		AwayGoals:  intPtr(0),
		Events: []fixture.ScoreEvent{
			{ID: "ev-1", FixtureID: "fx-a", PlayerID: "player-x", Kind: fixture.EventGoal},
		},
	})

	if err := service.DeleteEvent(context.Background(), "ev-1"); err != nil {
		t.Fatalf("DeleteEvent error: %v", err)
	}

	fx, _, _ := fixtureRepo.GetByID(context.Background(), "fx-a")
	if len(fx.Events) != 0 {
		t.Fatalf("event not removed, %d remain", len(fx.Events))
	}

	// Recompute runs from the remaining data: no events, clean sheet bonus only.
	row, ok := scoringRepo.playerPointsFor("player-x", testGameweekID)
	if !ok {
		t.Fatal("expected recompute after deletion")
	}
	if row.Points != 1 {
		t.Fatalf("unexpected points after deletion: got=%d want=1", row.Points)
	}
}

func TestDeleteEvent_NotFound(t *testing.T) {
	t.Parallel()

	service, _, _ := newFixtureServiceForTest()

	err := service.DeleteEvent(context.Background(), "ev-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

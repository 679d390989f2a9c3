package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	"github.com/Jakealex/fantasy-league/internal/platform/id"
	"github.com/Jakealex/fantasy-league/internal/platform/logging"
)

// FixtureService covers admin match-data entry: final scores and score
// events. Every mutation that can change points re-runs both scoring passes
// for the owning gameweek; full recomputation is the only recovery path after
// edits or deletions.
type FixtureService struct {
	fixtureRepo fixture.Repository
	scoring     *ScoringService
	idGen       id.Generator
	logger      *logging.Logger
}

func NewFixtureService(
	fixtureRepo fixture.Repository,
	scoringService *ScoringService,
	idGen id.Generator,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		scoring:     scoringService,
		idGen:       idGen,
		logger:      logger,
	}
}

// ListFixtures returns a gameweek's fixtures with their events.
func (s *FixtureService) ListFixtures(ctx context.Context, gameweekID string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixtures")
	defer span.End()

	fixtures, err := s.fixtureRepo.ListByGameweek(ctx, gameweekID)
	if err != nil {
		return nil, crerr.Wrap(err, "list fixtures by gameweek")
	}
	return fixtures, nil
}

// ListEvents returns a fixture's score events.
func (s *FixtureService) ListEvents(ctx context.Context, fixtureID string) ([]fixture.ScoreEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListEvents")
	defer span.End()

	if _, ok, err := s.fixtureRepo.GetByID(ctx, fixtureID); err != nil {
		return nil, crerr.Wrap(err, "get fixture")
	} else if !ok {
		return nil, fmt.Errorf("%w: fixture %s", ErrNotFound, fixtureID)
	}

	events, err := s.fixtureRepo.ListEventsByFixture(ctx, fixtureID)
	if err != nil {
		return nil, crerr.Wrapf(err, "list events fixture=%s", fixtureID)
	}
	return events, nil
}

// RecordResult stores a fixture's final score and recomputes the gameweek.
func (s *FixtureService) RecordResult(ctx context.Context, fixtureID string, homeGoals, awayGoals int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RecordResult")
	defer span.End()

	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}

	fx, ok, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return crerr.Wrap(err, "get fixture")
	}
	if !ok {
		return fmt.Errorf("%w: fixture %s", ErrNotFound, fixtureID)
	}

	if err := s.fixtureRepo.SetResult(ctx, fixtureID, homeGoals, awayGoals); err != nil {
		return crerr.Wrapf(err, "set result fixture=%s", fixtureID)
	}

	s.logger.InfoContext(ctx, "fixture result recorded",
		"fixture_id", fixtureID,
		"home_goals", homeGoals,
		"away_goals", awayGoals,
	)
	return s.scoring.RunScoring(ctx, fx.GameweekID)
}

// AddEvent records one score event. The gameweek is recomputed only when the
// owning fixture is already settled; events on unsettled fixtures cannot
// affect points yet.
func (s *FixtureService) AddEvent(ctx context.Context, fixtureID, playerID string, kind fixture.EventKind, minute *int) (fixture.ScoreEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.AddEvent")
	defer span.End()

	fx, ok, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.ScoreEvent{}, crerr.Wrap(err, "get fixture")
	}
	if !ok {
		return fixture.ScoreEvent{}, fmt.Errorf("%w: fixture %s", ErrNotFound, fixtureID)
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return fixture.ScoreEvent{}, crerr.Wrap(err, "generate event id")
	}

	event := fixture.ScoreEvent{
		ID:        eventID,
		FixtureID: fixtureID,
		PlayerID:  playerID,
		Kind:      kind,
		Minute:    minute,
	}
	if err := event.Validate(); err != nil {
		return fixture.ScoreEvent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.fixtureRepo.AddEvent(ctx, event); err != nil {
		return fixture.ScoreEvent{}, crerr.Wrapf(err, "add event fixture=%s", fixtureID)
	}

	if fx.Settled() {
		if err := s.scoring.RunScoring(ctx, fx.GameweekID); err != nil {
			return fixture.ScoreEvent{}, err
		}
	}
	return event, nil
}

// DeleteEvent removes one score event and recomputes the owning gameweek
// when the fixture was settled.
func (s *FixtureService) DeleteEvent(ctx context.Context, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.DeleteEvent")
	defer span.End()

	event, ok, err := s.fixtureRepo.GetEvent(ctx, eventID)
	if err != nil {
		return crerr.Wrap(err, "get event")
	}
	if !ok {
		return fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}

	fx, found, err := s.fixtureRepo.GetByID(ctx, event.FixtureID)
	if err != nil {
		return crerr.Wrap(err, "get fixture for event")
	}

	if err := s.fixtureRepo.DeleteEvent(ctx, eventID); err != nil {
		return crerr.Wrapf(err, "delete event %s", eventID)
	}

	s.logger.InfoContext(ctx, "score event deleted",
		"event_id", eventID,
		"fixture_id", event.FixtureID,
	)

	if found && fx.Settled() {
		return s.scoring.RunScoring(ctx, fx.GameweekID)
	}
	return nil
}

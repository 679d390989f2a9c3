package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	"github.com/Jakealex/fantasy-league/internal/domain/gameweek"
	"github.com/Jakealex/fantasy-league/internal/domain/player"
	"github.com/Jakealex/fantasy-league/internal/domain/scoring"
	"github.com/Jakealex/fantasy-league/internal/domain/team"
	"github.com/Jakealex/fantasy-league/internal/platform/logging"
	"github.com/Jakealex/fantasy-league/internal/platform/resilience"
)

const defaultScoringWorkerCount = 4

// ScoringService owns the two gameweek scoring passes: the player-points
// calculator and the team-score aggregator. Both are idempotent batch
// recomputations over a single gameweek; rerunning after a failure is the
// recovery mechanism. Concurrent runs for the same gameweek collapse into one
// via single-flight.
type ScoringService struct {
	gameweekRepo gameweek.Repository
	fixtureRepo  fixture.Repository
	playerRepo   player.Repository
	teamRepo     team.Repository
	scoringRepo  scoring.Repository
	logger       *logging.Logger
	runFlight    resilience.SingleFlight
	workerCount  int
}

func NewScoringService(
	gameweekRepo gameweek.Repository,
	fixtureRepo fixture.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	scoringRepo scoring.Repository,
	logger *logging.Logger,
	workerCount int,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	if workerCount <= 0 {
		workerCount = defaultScoringWorkerCount
	}
	return &ScoringService{
		gameweekRepo: gameweekRepo,
		fixtureRepo:  fixtureRepo,
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		scoringRepo:  scoringRepo,
		logger:       logger,
		workerCount:  workerCount,
	}
}

// RunScoring executes the calculator followed by the aggregator for one
// gameweek. The aggregator only ever reads the calculator's stored output, so
// this ordering is the contract callers rely on.
func (s *ScoringService) RunScoring(ctx context.Context, gameweekID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RunScoring")
	defer span.End()

	_, err, _ := s.runFlight.Do(scoringRunKey(gameweekID), func() (any, error) {
		if err := s.calculatePlayerPoints(ctx, gameweekID); err != nil {
			return nil, err
		}
		return nil, s.calculateGameweekScores(ctx, gameweekID)
	})
	return err
}

// CalculatePlayerPoints recomputes and upserts one PlayerPoints row for every
// player appearing in a settled fixture of the gameweek.
func (s *ScoringService) CalculatePlayerPoints(ctx context.Context, gameweekID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculatePlayerPoints")
	defer span.End()

	_, err, _ := s.runFlight.Do(scoringRunKey(gameweekID), func() (any, error) {
		return nil, s.calculatePlayerPoints(ctx, gameweekID)
	})
	return err
}

// CalculateGameweekScores recomputes and upserts one GameweekScore row per
// fantasy team, trusting the stored per-player points as the single source of
// truth. It does not verify that the calculator already ran; absent rows
// count as zero.
func (s *ScoringService) CalculateGameweekScores(ctx context.Context, gameweekID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.CalculateGameweekScores")
	defer span.End()

	_, err, _ := s.runFlight.Do(scoringRunKey(gameweekID), func() (any, error) {
		return nil, s.calculateGameweekScores(ctx, gameweekID)
	})
	return err
}

func scoringRunKey(gameweekID string) string {
	return "scoring:run:" + gameweekID
}

// playerAccum collects a player's raw counters across every settled fixture
// of the gameweek before the formula is applied once.
type playerAccum struct {
	position player.Position
	line     scoring.StatLine
}

type fixtureRosters struct {
	home []player.Player
	away []player.Player
}

func (s *ScoringService) calculatePlayerPoints(ctx context.Context, gameweekID string) error {
	if _, ok, err := s.gameweekRepo.GetByID(ctx, gameweekID); err != nil {
		return crerr.Wrap(err, "get gameweek")
	} else if !ok {
		return fmt.Errorf("%w: gameweek %s", ErrNotFound, gameweekID)
	}

	fixtures, err := s.fixtureRepo.ListByGameweek(ctx, gameweekID)
	if err != nil {
		return crerr.Wrap(err, "list fixtures by gameweek")
	}

	settled := make([]fixture.Fixture, 0, len(fixtures))
	for _, fx := range fixtures {
		if fx.Settled() {
			settled = append(settled, fx)
		}
	}

	rosters, err := s.loadRosters(ctx, settled)
	if err != nil {
		return err
	}

	stats := make(map[string]*playerAccum)
	for i, fx := range settled {
		homeGoals := *fx.HomeGoals
		awayGoals := *fx.AwayGoals

		// A player appearing in two fixtures of one gameweek accumulates
		// conceded goals from both.
		for _, pl := range rosters[i].home {
			seedConceded(stats, pl, awayGoals)
		}
		for _, pl := range rosters[i].away {
			seedConceded(stats, pl, homeGoals)
		}

		for _, ev := range fx.Events {
			acc, ok := stats[ev.PlayerID]
			if !ok {
				acc, err = s.seedFromDirectLookup(ctx, fx, ev)
				if err != nil {
					return err
				}
				if acc == nil {
					continue
				}
				stats[ev.PlayerID] = acc
			}
			applyEvent(&acc.line, ev.Kind)
		}
	}

	playerIDs := make([]string, 0, len(stats))
	for id := range stats {
		playerIDs = append(playerIDs, id)
	}
	sort.Strings(playerIDs)

	for _, id := range playerIDs {
		acc := stats[id]
		row := scoring.PlayerPoints{
			PlayerID:   id,
			GameweekID: gameweekID,
			Points:     scoring.PointsFor(acc.position, acc.line),
			StatLine:   acc.line,
		}
		if err := s.scoringRepo.UpsertPlayerPoints(ctx, row); err != nil {
			return crerr.Wrapf(err, "upsert player points player=%s gameweek=%s", id, gameweekID)
		}
	}

	s.logger.InfoContext(ctx, "player points calculated",
		"gameweek_id", gameweekID,
		"settled_fixtures", len(settled),
		"players", len(playerIDs),
	)
	return nil
}

// loadRosters resolves both teams' full rosters for every settled fixture.
// Reads run concurrently; accumulation stays sequential so results are
// deterministic.
func (s *ScoringService) loadRosters(ctx context.Context, settled []fixture.Fixture) ([]fixtureRosters, error) {
	rosters := make([]fixtureRosters, len(settled))
	p := pool.New().WithContext(ctx).WithCancelOnError()
	for i := range settled {
		i := i
		p.Go(func(ctx context.Context) error {
			home, err := s.playerRepo.ListByTeamName(ctx, settled[i].HomeTeam)
			if err != nil {
				return crerr.Wrapf(err, "list roster team=%s", settled[i].HomeTeam)
			}
			away, err := s.playerRepo.ListByTeamName(ctx, settled[i].AwayTeam)
			if err != nil {
				return crerr.Wrapf(err, "list roster team=%s", settled[i].AwayTeam)
			}
			rosters[i] = fixtureRosters{home: home, away: away}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return rosters, nil
}

// seedFromDirectLookup handles a score event whose player was not on either
// resolved roster. Unexpected input, handled best-effort with a direct player
// lookup; an unresolvable player is skipped with a warning.
func (s *ScoringService) seedFromDirectLookup(ctx context.Context, fx fixture.Fixture, ev fixture.ScoreEvent) (*playerAccum, error) {
	pl, found, err := s.playerRepo.GetByID(ctx, ev.PlayerID)
	if err != nil {
		return nil, crerr.Wrapf(err, "get player for event %s", ev.ID)
	}
	if !found {
		s.logger.WarnContext(ctx, "score event references unknown player, skipping",
			"event_id", ev.ID,
			"fixture_id", fx.ID,
			"player_id", ev.PlayerID,
		)
		return nil, nil
	}

	conceded := *fx.HomeGoals
	if pl.TeamName == fx.HomeTeam {
		conceded = *fx.AwayGoals
	}
	return &playerAccum{
		position: pl.Position,
		line:     scoring.StatLine{GoalsConceded: conceded},
	}, nil
}

func seedConceded(stats map[string]*playerAccum, pl player.Player, conceded int) {
	acc, ok := stats[pl.ID]
	if !ok {
		stats[pl.ID] = &playerAccum{
			position: pl.Position,
			line:     scoring.StatLine{GoalsConceded: conceded},
		}
		return
	}
	acc.line.GoalsConceded += conceded
}

func applyEvent(line *scoring.StatLine, kind fixture.EventKind) {
	switch kind {
	case fixture.EventGoal:
		line.Goals++
	case fixture.EventAssist:
		line.Assists++
	case fixture.EventOwnGoal:
		line.OwnGoals++
	case fixture.EventYellowCard:
		line.YellowCards++
	case fixture.EventRedCard:
		line.RedCards++
	}
}

func (s *ScoringService) calculateGameweekScores(ctx context.Context, gameweekID string) error {
	if _, ok, err := s.gameweekRepo.GetByID(ctx, gameweekID); err != nil {
		return crerr.Wrap(err, "get gameweek")
	} else if !ok {
		return fmt.Errorf("%w: gameweek %s", ErrNotFound, gameweekID)
	}

	teams, err := s.teamRepo.ListTeams(ctx)
	if err != nil {
		return crerr.Wrap(err, "list teams")
	}

	rows, err := s.scoringRepo.ListPlayerPointsByGameweek(ctx, gameweekID)
	if err != nil {
		return crerr.Wrap(err, "list player points by gameweek")
	}
	pointsByPlayer := make(map[string]int, len(rows))
	for _, row := range rows {
		pointsByPlayer[row.PlayerID] = row.Points
	}

	// Per-team totals are independent, so teams are scored on a worker pool.
	workers, err := ants.NewPool(s.workerCount)
	if err != nil {
		return crerr.Wrap(err, "create scoring worker pool")
	}
	defer workers.Release()

	errs := make(chan error, len(teams))
	var wg sync.WaitGroup
	for _, tm := range teams {
		tm := tm
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			if err := s.scoreTeam(ctx, tm, gameweekID, pointsByPlayer); err != nil {
				errs <- err
			}
		}); err != nil {
			wg.Done()
			return crerr.Wrap(err, "submit team to scoring worker pool")
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "gameweek scores calculated",
		"gameweek_id", gameweekID,
		"teams", len(teams),
	)
	return nil
}

func (s *ScoringService) scoreTeam(ctx context.Context, tm team.Team, gameweekID string, pointsByPlayer map[string]int) error {
	slots, err := s.teamRepo.ListSlotsByTeam(ctx, tm.ID)
	if err != nil {
		return crerr.Wrapf(err, "list squad slots team=%s", tm.ID)
	}

	// Data-integrity guard, not a hard invariant: a malformed squad skips
	// scoring for that team without failing the batch.
	if len(slots) != team.RequiredSquadSlots {
		s.logger.WarnContext(ctx, "team squad slot count mismatch, skipping",
			"team_id", tm.ID,
			"team_name", tm.Name,
			"slots", len(slots),
			"expected", team.RequiredSquadSlots,
		)
		return nil
	}

	total := 0
	captainPoints := 0
	captainSet := false
	for _, slot := range slots {
		if slot.PlayerID == nil {
			continue
		}
		// Absent PlayerPoints rows count as zero, not an error.
		base := pointsByPlayer[*slot.PlayerID]
		total += base
		if slot.IsCaptain {
			captainPoints = base
			captainSet = true
		}
	}

	// Captain doubling: the captain's base points count twice toward the
	// total.
	if captainSet {
		total += captainPoints
	}

	if err := s.scoringRepo.UpsertGameweekScore(ctx, scoring.GameweekScore{
		TeamID:     tm.ID,
		GameweekID: gameweekID,
		Total:      total,
	}); err != nil {
		return crerr.Wrapf(err, "upsert gameweek score team=%s gameweek=%s", tm.ID, gameweekID)
	}
	return nil
}

// ListPlayerPoints returns the calculator's stored output for a gameweek.
func (s *ScoringService) ListPlayerPoints(ctx context.Context, gameweekID string) ([]scoring.PlayerPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ListPlayerPoints")
	defer span.End()

	if _, ok, err := s.gameweekRepo.GetByID(ctx, gameweekID); err != nil {
		return nil, crerr.Wrap(err, "get gameweek")
	} else if !ok {
		return nil, fmt.Errorf("%w: gameweek %s", ErrNotFound, gameweekID)
	}
	rows, err := s.scoringRepo.ListPlayerPointsByGameweek(ctx, gameweekID)
	if err != nil {
		return nil, crerr.Wrap(err, "list player points by gameweek")
	}
	return rows, nil
}

// ListGameweekScores returns the aggregator's stored output for a gameweek.
func (s *ScoringService) ListGameweekScores(ctx context.Context, gameweekID string) ([]scoring.GameweekScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ListGameweekScores")
	defer span.End()

	if _, ok, err := s.gameweekRepo.GetByID(ctx, gameweekID); err != nil {
		return nil, crerr.Wrap(err, "get gameweek")
	} else if !ok {
		return nil, fmt.Errorf("%w: gameweek %s", ErrNotFound, gameweekID)
	}
	rows, err := s.scoringRepo.ListGameweekScoresByGameweek(ctx, gameweekID)
	if err != nil {
		return nil, crerr.Wrap(err, "list gameweek scores by gameweek")
	}
	return rows, nil
}

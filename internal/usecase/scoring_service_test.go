package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	"github.com/Jakealex/fantasy-league/internal/domain/gameweek"
	"github.com/Jakealex/fantasy-league/internal/domain/player"
	"github.com/Jakealex/fantasy-league/internal/domain/scoring"
	"github.com/Jakealex/fantasy-league/internal/domain/team"
)

type stubGameweekRepository struct {
	items map[string]gameweek.Gameweek
}

func (r *stubGameweekRepository) GetByID(_ context.Context, id string) (gameweek.Gameweek, bool, error) {
	gw, ok := r.items[id]
	return gw, ok, nil
}

func (r *stubGameweekRepository) List(_ context.Context) ([]gameweek.Gameweek, error) {
	out := make([]gameweek.Gameweek, 0, len(r.items))
	for _, gw := range r.items {
		out = append(out, gw)
	}
	return out, nil
}

type stubFixtureRepository struct {
	mu       sync.Mutex
	fixtures map[string]fixture.Fixture
}

func newStubFixtureRepository(fixtures ...fixture.Fixture) *stubFixtureRepository {
	items := make(map[string]fixture.Fixture, len(fixtures))
	for _, fx := range fixtures {
		items[fx.ID] = fx
	}
	return &stubFixtureRepository{fixtures: items}
}

func (r *stubFixtureRepository) ListByGameweek(_ context.Context, gameweekID string) ([]fixture.Fixture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]fixture.Fixture, 0)
	for _, fx := range r.fixtures {
		if fx.GameweekID == gameweekID {
			out = append(out, fx)
		}
	}
	return out, nil
}

func (r *stubFixtureRepository) GetByID(_ context.Context, id string) (fixture.Fixture, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fx, ok := r.fixtures[id]
	return fx, ok, nil
}

func (r *stubFixtureRepository) SetResult(_ context.Context, id string, homeGoals, awayGoals int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fx, ok := r.fixtures[id]
	if !ok {
		return fmt.Errorf("fixture not found: %s", id)
	}
	fx.HomeGoals = &homeGoals
	fx.AwayGoals = &awayGoals
	r.fixtures[id] = fx
	return nil
}

func (r *stubFixtureRepository) AddEvent(_ context.Context, event fixture.ScoreEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fx, ok := r.fixtures[event.FixtureID]
	if !ok {
		return fmt.Errorf("fixture not found: %s", event.FixtureID)
	}
	fx.Events = append(fx.Events, event)
	r.fixtures[event.FixtureID] = fx
	return nil
}

func (r *stubFixtureRepository) GetEvent(_ context.Context, eventID string) (fixture.ScoreEvent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, fx := range r.fixtures {
		for _, ev := range fx.Events {
			if ev.ID == eventID {
				return ev, true, nil
			}
		}
	}
	return fixture.ScoreEvent{}, false, nil
}

func (r *stubFixtureRepository) ListEventsByFixture(_ context.Context, fixtureID string) ([]fixture.ScoreEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fx, ok := r.fixtures[fixtureID]
	if !ok {
		return []fixture.ScoreEvent{}, nil
	}
	return append([]fixture.ScoreEvent(nil), fx.Events...), nil
}

func (r *stubFixtureRepository) DeleteEvent(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, fx := range r.fixtures {
		kept := fx.Events[:0]
		for _, ev := range fx.Events {
			if ev.ID != eventID {
				kept = append(kept, ev)
			}
		}
		fx.Events = kept
		r.fixtures[id] = fx
	}
	return nil
}

type stubPlayerRepository struct {
	players []player.Player
}

func (r *stubPlayerRepository) ListByTeamName(_ context.Context, teamName string) ([]player.Player, error) {
	out := make([]player.Player, 0)
	for _, pl := range r.players {
		if pl.TeamName == teamName {
			out = append(out, pl)
		}
	}
	return out, nil
}

func (r *stubPlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	for _, pl := range r.players {
		if pl.ID == id {
			return pl, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *stubPlayerRepository) ListByIDs(_ context.Context, ids []string) ([]player.Player, error) {
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		for _, pl := range r.players {
			if pl.ID == id {
				out = append(out, pl)
			}
		}
	}
	return out, nil
}

type stubTeamRepository struct {
	teams       []team.Team
	slotsByTeam map[string][]team.SquadSlot
}

func (r *stubTeamRepository) ListTeams(_ context.Context) ([]team.Team, error) {
	return append([]team.Team(nil), r.teams...), nil
}

func (r *stubTeamRepository) ListSlotsByTeam(_ context.Context, teamID string) ([]team.SquadSlot, error) {
	return append([]team.SquadSlot(nil), r.slotsByTeam[teamID]...), nil
}

type stubScoringRepository struct {
	mu           sync.Mutex
	playerPoints map[string]scoring.PlayerPoints
	scores       map[string]scoring.GameweekScore
}

func newStubScoringRepository() *stubScoringRepository {
	return &stubScoringRepository{
		playerPoints: make(map[string]scoring.PlayerPoints),
		scores:       make(map[string]scoring.GameweekScore),
	}
}

func (r *stubScoringRepository) UpsertPlayerPoints(_ context.Context, row scoring.PlayerPoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playerPoints[row.PlayerID+"::"+row.GameweekID] = row
	return nil
}

func (r *stubScoringRepository) ListPlayerPointsByGameweek(_ context.Context, gameweekID string) ([]scoring.PlayerPoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]scoring.PlayerPoints, 0)
	for _, row := range r.playerPoints {
		if row.GameweekID == gameweekID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubScoringRepository) UpsertGameweekScore(_ context.Context, row scoring.GameweekScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores[row.TeamID+"::"+row.GameweekID] = row
	return nil
}

func (r *stubScoringRepository) ListGameweekScoresByGameweek(_ context.Context, gameweekID string) ([]scoring.GameweekScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]scoring.GameweekScore, 0)
	for _, row := range r.scores {
		if row.GameweekID == gameweekID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubScoringRepository) playerPointsFor(playerID, gameweekID string) (scoring.PlayerPoints, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.playerPoints[playerID+"::"+gameweekID]
	return row, ok
}

func intPtr(v int) *int { return &v }

const testGameweekID = "gw-1"

func testGameweekRepo() *stubGameweekRepository {
	return &stubGameweekRepository{items: map[string]gameweek.Gameweek{
		testGameweekID: {ID: testGameweekID, Number: 1},
	}}
}

func TestCalculatePlayerPoints_ConcreteScenario(t *testing.T) {
	t.Parallel()

	fixtureA := fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(2),
		AwayGoals:  intPtr(1),
		Events: []fixture.ScoreEvent{
			{ID: "ev-1", FixtureID: "fx-a", PlayerID: "player-x", Kind: fixture.EventGoal},
			{ID: "ev-2", FixtureID: "fx-a", PlayerID: "player-y", Kind: fixture.EventAssist},
		},
	}
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "player-x", Name: "X", TeamName: "Lions", Position: player.PositionOutfield},
		{ID: "player-y", Name: "Y", TeamName: "Lions", Position: player.PositionOutfield},
		{ID: "keeper-t", Name: "K", TeamName: "Tigers", Position: player.PositionGoalkeeper},
	}}
	scoringRepo := newStubScoringRepository()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(fixtureA), playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("CalculatePlayerPoints error: %v", err)
	}

	x, ok := scoringRepo.playerPointsFor("player-x", testGameweekID)
	if !ok {
		t.Fatal("expected player points for player-x")
	}
	if x.Goals != 1 || x.GoalsConceded != 1 {
		t.Fatalf("unexpected stats for player-x: %+v", x.StatLine)
	}
	if x.Points != 6 {
		t.Fatalf("unexpected points for player-x: got=%d want=6", x.Points)
	}

	y, _ := scoringRepo.playerPointsFor("player-y", testGameweekID)
	if y.Points != 4 {
		t.Fatalf("unexpected points for player-y: got=%d want=4", y.Points)
	}

	// Tigers keeper conceded both home goals: 7 - 2 = 5.
	keeper, _ := scoringRepo.playerPointsFor("keeper-t", testGameweekID)
	if keeper.Points != 5 {
		t.Fatalf("unexpected points for keeper-t: got=%d want=5", keeper.Points)
	}
}

func TestCalculatePlayerPoints_UnsettledFixtureExcluded(t *testing.T) {
	t.Parallel()

	unsettled := fixture.Fixture{
		ID:         "fx-open",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		AwayGoals:  intPtr(3),
		Events: []fixture.ScoreEvent{
			{ID: "ev-1", FixtureID: "fx-open", PlayerID: "player-x", Kind: fixture.EventGoal},
		},
	}
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "player-x", Name: "X", TeamName: "Lions", Position: player.PositionOutfield},
	}}
	scoringRepo := newStubScoringRepository()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(unsettled), playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("CalculatePlayerPoints error: %v", err)
	}

	if _, ok := scoringRepo.playerPointsFor("player-x", testGameweekID); ok {
		t.Fatal("unsettled fixture must not produce player points")
	}
}

func TestCalculatePlayerPoints_GoalkeeperNoFloor(t *testing.T) {
	t.Parallel()

	rout := fixture.Fixture{
		ID:         "fx-rout",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(9),
		AwayGoals:  intPtr(0),
	}
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "keeper-t", Name: "K", TeamName: "Tigers", Position: player.PositionGoalkeeper},
	}}
	scoringRepo := newStubScoringRepository()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(rout), playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("CalculatePlayerPoints error: %v", err)
	}

	keeper, ok := scoringRepo.playerPointsFor("keeper-t", testGameweekID)
	if !ok {
		t.Fatal("expected player points for keeper-t")
	}
	if keeper.Points != -2 {
		t.Fatalf("goalkeeper conceding 9 must score -2, got %d", keeper.Points)
	}
}

func TestCalculatePlayerPoints_RedOverridesYellow(t *testing.T) {
	t.Parallel()

	fx := fixture.Fixture{
		ID:         "fx-cards",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(0),
		AwayGoals:  intPtr(4),
		Events: []fixture.ScoreEvent{
			{ID: "ev-1", FixtureID: "fx-cards", PlayerID: "player-x", Kind: fixture.EventYellowCard},
			{ID: "ev-2", FixtureID: "fx-cards", PlayerID: "player-x", Kind: fixture.EventYellowCard},
			{ID: "ev-3", FixtureID: "fx-cards", PlayerID: "player-x", Kind: fixture.EventRedCard},
		},
	}
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "player-x", Name: "X", TeamName: "Lions", Position: player.PositionOutfield},
	}}
	scoringRepo := newStubScoringRepository()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(fx), playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("CalculatePlayerPoints error: %v", err)
	}

	row, _ := scoringRepo.playerPointsFor("player-x", testGameweekID)
	if row.YellowCards != 2 || row.RedCards != 1 {
		t.Fatalf("unexpected card counts: %+v", row.StatLine)
	}
	// Red card penalty only; conceding 4 removes the outfield bonus.
	if row.Points != -3 {
		t.Fatalf("expected -3 points, got %d", row.Points)
	}
}

func TestCalculatePlayerPoints_ConcededSumsAcrossFixtures(t *testing.T) {
	t.Parallel()

	first := fixture.Fixture{
		ID:         "fx-1",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(1),
		AwayGoals:  intPtr(2),
	}
	second := fixture.Fixture{
		ID:         "fx-2",
		GameweekID: testGameweekID,
		HomeTeam:   "Bears",
		AwayTeam:   "Lions",
		HomeGoals:  intPtr(2),
		AwayGoals:  intPtr(0),
	}
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "player-x", Name: "X", TeamName: "Lions", Position: player.PositionOutfield},
	}}
	scoringRepo := newStubScoringRepository()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(first, second), playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("CalculatePlayerPoints error: %v", err)
	}

	row, ok := scoringRepo.playerPointsFor("player-x", testGameweekID)
	if !ok {
		t.Fatal("expected player points for player-x")
	}
	// 2 conceded at home to Tigers plus 2 away at Bears.
	if row.GoalsConceded != 4 {
		t.Fatalf("expected 4 conceded across both fixtures, got %d", row.GoalsConceded)
	}
	if row.Points != 0 {
		t.Fatalf("expected 0 points (no bonus at 4 conceded), got %d", row.Points)
	}
}

func TestCalculatePlayerPoints_DirectLookupForUnrosteredEventPlayer(t *testing.T) {
	t.Parallel()

	fx := fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(2),
		AwayGoals:  intPtr(1),
		Events: []fixture.ScoreEvent{
			{ID: "ev-1", FixtureID: "fx-a", PlayerID: "stray", Kind: fixture.EventGoal},
			{ID: "ev-2", FixtureID: "fx-a", PlayerID: "ghost", Kind: fixture.EventGoal},
		},
	}
	// "stray" resolves by direct lookup even though the roster scan misses
	// him; "ghost" resolves to nothing and is skipped.
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "stray", Name: "S", TeamName: "Wolves", Position: player.PositionOutfield},
	}}
	scoringRepo := newStubScoringRepository()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(fx), playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("CalculatePlayerPoints error: %v", err)
	}

	stray, ok := scoringRepo.playerPointsFor("stray", testGameweekID)
	if !ok {
		t.Fatal("expected player points for stray")
	}
	// Not the home side, so conceded seeds from home goals.
	if stray.GoalsConceded != 2 {
		t.Fatalf("expected 2 conceded for stray, got %d", stray.GoalsConceded)
	}
	if stray.Points != 6 {
		t.Fatalf("expected 6 points for stray, got %d", stray.Points)
	}

	if _, ok := scoringRepo.playerPointsFor("ghost", testGameweekID); ok {
		t.Fatal("unresolvable event player must not produce a row")
	}
}

func TestCalculatePlayerPoints_Idempotent(t *testing.T) {
	t.Parallel()

	fx := fixture.Fixture{
		ID:         "fx-a",
		GameweekID: testGameweekID,
		HomeTeam:   "Lions",
		AwayTeam:   "Tigers",
		HomeGoals:  intPtr(2),
		AwayGoals:  intPtr(1),
		Events: []fixture.ScoreEvent{
			{ID: "ev-1", FixtureID: "fx-a", PlayerID: "player-x", Kind: fixture.EventGoal},
		},
	}
	playerRepo := &stubPlayerRepository{players: []player.Player{
		{ID: "player-x", Name: "X", TeamName: "Lions", Position: player.PositionOutfield},
		{ID: "keeper-t", Name: "K", TeamName: "Tigers", Position: player.PositionGoalkeeper},
	}}
	scoringRepo := newStubScoringRepository()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(fx), playerRepo, &stubTeamRepository{}, scoringRepo, nil, 0)

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	first := make(map[string]scoring.PlayerPoints, len(scoringRepo.playerPoints))
	for k, v := range scoringRepo.playerPoints {
		first[k] = v
	}

	if err := service.CalculatePlayerPoints(context.Background(), testGameweekID); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	if !reflect.DeepEqual(first, scoringRepo.playerPoints) {
		t.Fatalf("recomputation changed rows: first=%+v second=%+v", first, scoringRepo.playerPoints)
	}
}

func TestCalculatePlayerPoints_GameweekNotFound(t *testing.T) {
	t.Parallel()

	service := NewScoringService(testGameweekRepo(), newStubFixtureRepository(), &stubPlayerRepository{}, &stubTeamRepository{}, newStubScoringRepository(), nil, 0)

	err := service.CalculatePlayerPoints(context.Background(), "gw-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures map[string]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	items := make(map[string]fixture.Fixture, len(fixtures))
	for _, fx := range fixtures {
		items[fx.ID] = cloneFixture(fx)
	}
	return &FixtureRepository{fixtures: items}
}

func (r *FixtureRepository) ListByGameweek(_ context.Context, gameweekID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, fx := range r.fixtures {
		if fx.GameweekID == gameweekID {
			out = append(out, cloneFixture(fx))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, id string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fx, ok := r.fixtures[id]
	if !ok {
		return fixture.Fixture{}, false, nil
	}
	return cloneFixture(fx), true, nil
}

func (r *FixtureRepository) SetResult(_ context.Context, id string, homeGoals, awayGoals int) error {
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

func (r *FixtureRepository) AddEvent(_ context.Context, event fixture.ScoreEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fx, ok := r.fixtures[event.FixtureID]
	if !ok {
		return fmt.Errorf("fixture not found: %s", event.FixtureID)
	}
	fx.Events = append(fx.Events, cloneEvent(event))
	r.fixtures[event.FixtureID] = fx
	return nil
}

func (r *FixtureRepository) GetEvent(_ context.Context, eventID string) (fixture.ScoreEvent, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, fx := range r.fixtures {
		for _, ev := range fx.Events {
			if ev.ID == eventID {
				return cloneEvent(ev), true, nil
			}
		}
	}
	return fixture.ScoreEvent{}, false, nil
}

func (r *FixtureRepository) ListEventsByFixture(_ context.Context, fixtureID string) ([]fixture.ScoreEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fx, ok := r.fixtures[fixtureID]
	if !ok {
		return []fixture.ScoreEvent{}, nil
	}
	out := make([]fixture.ScoreEvent, 0, len(fx.Events))
	for _, ev := range fx.Events {
		out = append(out, cloneEvent(ev))
	}
	return out, nil
}

func (r *FixtureRepository) DeleteEvent(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, fx := range r.fixtures {
		for i, ev := range fx.Events {
			if ev.ID != eventID {
				continue
			}
			fx.Events = append(fx.Events[:i], fx.Events[i+1:]...)
			r.fixtures[id] = fx
			return nil
		}
	}
	return fmt.Errorf("event not found: %s", eventID)
}

func cloneFixture(fx fixture.Fixture) fixture.Fixture {
	out := fx
	if fx.HomeGoals != nil {
		v := *fx.HomeGoals
		out.HomeGoals = &v
	}
	if fx.AwayGoals != nil {
		v := *fx.AwayGoals
		out.AwayGoals = &v
	}
	out.Events = make([]fixture.ScoreEvent, 0, len(fx.Events))
	for _, ev := range fx.Events {
		out.Events = append(out.Events, cloneEvent(ev))
	}
	return out
}

func cloneEvent(ev fixture.ScoreEvent) fixture.ScoreEvent {
	out := ev
	if ev.Minute != nil {
		v := *ev.Minute
		out.Minute = &v
	}
	return out
}

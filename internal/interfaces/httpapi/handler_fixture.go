package httpapi

import (
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	"github.com/Jakealex/fantasy-league/internal/usecase"
)

type scoreEventDTO struct {
	ID        string `json:"id"`
	FixtureID string `json:"fixture_id"`
	PlayerID  string `json:"player_id"`
	Kind      string `json:"kind"`
	Minute    *int   `json:"minute,omitempty"`
}

type fixtureDTO struct {
	ID         string          `json:"id"`
	GameweekID string          `json:"gameweek_id"`
	HomeTeam   string          `json:"home_team"`
	AwayTeam   string          `json:"away_team"`
	KickoffAt  time.Time       `json:"kickoff_at"`
	HomeGoals  *int            `json:"home_goals,omitempty"`
	AwayGoals  *int            `json:"away_goals,omitempty"`
	Settled    bool            `json:"settled"`
	Events     []scoreEventDTO `json:"events"`
}

type recordResultRequest struct {
	HomeGoals *int `json:"home_goals" validate:"required,min=0"`
	AwayGoals *int `json:"away_goals" validate:"required,min=0"`
}

type addEventRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Kind     string `json:"kind" validate:"required"`
	Minute   *int   `json:"minute" validate:"omitempty,min=0,max=120"`
}

func fixtureToDTO(fx fixture.Fixture) fixtureDTO {
	events := make([]scoreEventDTO, 0, len(fx.Events))
	for _, ev := range fx.Events {
		events = append(events, scoreEventToDTO(ev))
	}
	return fixtureDTO{
		ID:         fx.ID,
		GameweekID: fx.GameweekID,
		HomeTeam:   fx.HomeTeam,
		AwayTeam:   fx.AwayTeam,
		KickoffAt:  fx.KickoffAt,
		HomeGoals:  fx.HomeGoals,
		AwayGoals:  fx.AwayGoals,
		Settled:    fx.Settled(),
		Events:     events,
	}
}

func scoreEventToDTO(ev fixture.ScoreEvent) scoreEventDTO {
	return scoreEventDTO{
		ID:        ev.ID,
		FixtureID: ev.FixtureID,
		PlayerID:  ev.PlayerID,
		Kind:      string(ev.Kind),
		Minute:    ev.Minute,
	}
}

func (h *Handler) ListFixturesByGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByGameweek")
	defer span.End()

	gameweekID := r.PathValue("gameweekID")
	fixtures, err := h.fixtureService.ListFixtures(ctx, gameweekID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "gameweek_id", gameweekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, fx := range fixtures {
		items = append(items, fixtureToDTO(fx))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListFixtureEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureEvents")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	events, err := h.fixtureService.ListEvents(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixture events failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoreEventDTO, 0, len(events))
	for _, ev := range events {
		items = append(items, scoreEventToDTO(ev))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecordFixtureResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordFixtureResult")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")

	var req recordResultRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, usecase.ErrInvalidInput)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fixtureService.RecordResult(ctx, fixtureID, *req.HomeGoals, *req.AwayGoals); err != nil {
		h.logger.WarnContext(ctx, "record fixture result failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"fixture_id": fixtureID,
		"status":     "recorded",
	})
}

func (h *Handler) AddFixtureEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddFixtureEvent")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")

	var req addEventRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, usecase.ErrInvalidInput)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	kind, err := fixture.ParseEventKind(req.Kind)
	if err != nil {
		writeError(ctx, w, usecase.ErrInvalidInput)
		return
	}

	event, err := h.fixtureService.AddEvent(ctx, fixtureID, req.PlayerID, kind, req.Minute)
	if err != nil {
		h.logger.WarnContext(ctx, "add fixture event failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, scoreEventToDTO(event))
}

func (h *Handler) DeleteFixtureEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFixtureEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	if err := h.fixtureService.DeleteEvent(ctx, eventID); err != nil {
		h.logger.WarnContext(ctx, "delete fixture event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"event_id": eventID,
		"status":   "deleted",
	})
}

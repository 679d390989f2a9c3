package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/gameweeks/{gameweekID}/fixtures", handler.ListFixturesByGameweek)
	mux.HandleFunc("GET /v1/gameweeks/{gameweekID}/player-points", handler.ListPlayerPointsByGameweek)
	mux.HandleFunc("GET /v1/gameweeks/{gameweekID}/scores", handler.ListGameweekScores)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/events", handler.ListFixtureEvents)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	guard := func(h http.HandlerFunc) http.Handler {
		return RequireInternalJobToken(internalJobToken, h)
	}

	mux.Handle("POST /v1/internal/gameweeks/{gameweekID}/scoring/run", guard(handler.RunScoring))
	mux.Handle("POST /v1/internal/gameweeks/{gameweekID}/scoring/player-points", guard(handler.RunPlayerPointsCalculation))
	mux.Handle("POST /v1/internal/gameweeks/{gameweekID}/scoring/team-scores", guard(handler.RunGameweekScoreCalculation))
	mux.Handle("PUT /v1/internal/fixtures/{fixtureID}/result", guard(handler.RecordFixtureResult))
	mux.Handle("POST /v1/internal/fixtures/{fixtureID}/events", guard(handler.AddFixtureEvent))
	mux.Handle("DELETE /v1/internal/events/{eventID}", guard(handler.DeleteFixtureEvent))
}

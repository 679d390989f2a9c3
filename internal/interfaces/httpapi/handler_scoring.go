package httpapi

import (
	"net/http"

	"github.com/Jakealex/fantasy-league/internal/domain/scoring"
)

type playerPointsDTO struct {
	PlayerID      string `json:"player_id"`
	PlayerName    string `json:"player_name,omitempty"`
	GameweekID    string `json:"gameweek_id"`
	Points        int    `json:"points"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	OwnGoals      int    `json:"own_goals"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	GoalsConceded int    `json:"goals_conceded"`
}

type gameweekScoreDTO struct {
	TeamID     string `json:"team_id"`
	GameweekID string `json:"gameweek_id"`
	Total      int    `json:"total"`
}

func playerPointsToDTO(row scoring.PlayerPoints, nameByID map[string]string) playerPointsDTO {
	return playerPointsDTO{
		PlayerID:      row.PlayerID,
		PlayerName:    nameByID[row.PlayerID],
		GameweekID:    row.GameweekID,
		Points:        row.Points,
		Goals:         row.Goals,
		Assists:       row.Assists,
		OwnGoals:      row.OwnGoals,
		YellowCards:   row.YellowCards,
		RedCards:      row.RedCards,
		GoalsConceded: row.GoalsConceded,
	}
}

func (h *Handler) RunScoring(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScoring")
	defer span.End()

	gameweekID := r.PathValue("gameweekID")
	if err := h.scoringService.RunScoring(ctx, gameweekID); err != nil {
		h.logger.WarnContext(ctx, "run scoring failed", "gameweek_id", gameweekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"gameweek_id": gameweekID,
		"status":      "scored",
	})
}

func (h *Handler) RunPlayerPointsCalculation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunPlayerPointsCalculation")
	defer span.End()

	gameweekID := r.PathValue("gameweekID")
	if err := h.scoringService.CalculatePlayerPoints(ctx, gameweekID); err != nil {
		h.logger.WarnContext(ctx, "calculate player points failed", "gameweek_id", gameweekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"gameweek_id": gameweekID,
		"status":      "player points calculated",
	})
}

func (h *Handler) RunGameweekScoreCalculation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunGameweekScoreCalculation")
	defer span.End()

	gameweekID := r.PathValue("gameweekID")
	if err := h.scoringService.CalculateGameweekScores(ctx, gameweekID); err != nil {
		h.logger.WarnContext(ctx, "calculate gameweek scores failed", "gameweek_id", gameweekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"gameweek_id": gameweekID,
		"status":      "gameweek scores calculated",
	})
}

func (h *Handler) ListPlayerPointsByGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerPointsByGameweek")
	defer span.End()

	gameweekID := r.PathValue("gameweekID")
	rows, err := h.scoringService.ListPlayerPoints(ctx, gameweekID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player points failed", "gameweek_id", gameweekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	nameByID := make(map[string]string)
	if h.playerService != nil && len(rows) > 0 {
		ids := make([]string, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.PlayerID)
		}
		players, listErr := h.playerService.ListPlayersByIDs(ctx, ids)
		if listErr != nil {
			h.logger.WarnContext(ctx, "list players failed while mapping player points", "gameweek_id", gameweekID, "error", listErr)
		} else {
			nameByID = make(map[string]string, len(players))
			for _, pl := range players {
				nameByID[pl.ID] = pl.Name
			}
		}
	}

	items := make([]playerPointsDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, playerPointsToDTO(row, nameByID))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListGameweekScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameweekScores")
	defer span.End()

	gameweekID := r.PathValue("gameweekID")
	rows, err := h.scoringService.ListGameweekScores(ctx, gameweekID)
	if err != nil {
		h.logger.WarnContext(ctx, "list gameweek scores failed", "gameweek_id", gameweekID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameweekScoreDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, gameweekScoreDTO{
			TeamID:     row.TeamID,
			GameweekID: row.GameweekID,
			Total:      row.Total,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

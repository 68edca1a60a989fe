package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoopsight/risk-api/internal/logic"
)

// GetTeams lists every team the service recognizes
// @Summary List Teams
// @Description List the canonical names accepted by the analysis endpoints
// @Tags Teams
// @Produce json
// @Success 200 {object} map[string]interface{} "Team list"
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams := logic.CanonicalTeams()
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}

// GetTeamStats returns the statistics snapshot for a team
// @Summary Get Team Stats
// @Description Fetch the aggregated season statistics for a team
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {object} models.TeamStatistics "Team Stats"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /teams/{team}/stats [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	ctx := r.Context()

	stats, err := h.teamData.GetTeamStatistics(ctx, team)
	if err != nil {
		h.logger.Warnw("Team stats lookup failed", "team", team, "error", err)
		h.errorResponse(w, http.StatusNotFound, "No statistics for team: "+team)
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}

// GetTeamInjuries returns the unavailable players for a team
// @Summary Get Team Injuries
// @Description List currently unavailable players with their importance grading
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Success 200 {array} models.PlayerStatus "Unavailable players"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /teams/{team}/injuries [get]
func (h *Handler) GetTeamInjuries(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	ctx := r.Context()

	players, err := h.teamData.GetUnavailablePlayers(ctx, team)
	if err != nil {
		h.logger.Errorw("Injuries lookup failed", "team", team, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load injuries")
		return
	}

	h.jsonResponse(w, http.StatusOK, players)
}

package handlers

import (
	"net/http"
)

// GetUpcomingGames returns the upcoming league schedule
// @Summary Upcoming Games
// @Description List upcoming games from the schedule feed (cached)
// @Tags Games
// @Produce json
// @Success 200 {array} models.GameInfo "Upcoming games"
// @Failure 502 {object} map[string]string "Feed Unavailable"
// @Router /games/upcoming [get]
func (h *Handler) GetUpcomingGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.schedule.UpcomingGames(r.Context())
	if err != nil {
		h.logger.Errorw("Schedule fetch failed", "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Schedule feed unavailable")
		return
	}

	h.jsonResponse(w, http.StatusOK, games)
}

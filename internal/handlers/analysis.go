package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hoopsight/risk-api/internal/logic"
	"github.com/hoopsight/risk-api/internal/models"
)

// PostAnalysis runs a betting risk analysis for a matchup
// @Summary Analyze Betting Risk
// @Description Runs the expert rule pass and Bayesian inference for a team in a given matchup
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body models.AnalysisRequest true "Matchup"
// @Success 200 {object} models.AnalysisResponse "Analysis"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown Team"
// @Router /analysis [post]
func (h *Handler) PostAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	resp, err := h.analysis.Analyze(r.Context(), req)
	if err != nil {
		if errors.Is(err, logic.ErrUnknownTeam) {
			h.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Errorw("Analysis failed", "team", req.Team, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, resp)
}

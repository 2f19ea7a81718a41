package handlers

import (
	"net/http"

	"jobhub/internal/app"
	"jobhub/internal/http/response"
)

type CandidateHandler struct {
	candidates *app.CandidateService
}

func NewCandidateHandler(candidates *app.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// List resolves the recruiter's unique candidate pool across every job of
// the recruiter's company.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	pool, err := h.candidates.UniqueCandidates(r.Context(), recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, pool)
}

package api

import (
	"net/http"
	"time"

	"github.com/vitorsp/perfboard/internal/models"
)

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	goals, err := s.GoalService.ListGoals(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	var req struct {
		Metric   string     `json:"metric"`
		Target   float64    `json:"target"`
		Deadline *time.Time `json:"deadline"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	goal, err := s.GoalService.CreateGoal(r.Context(), models.Goal{
		ProfileID: profile.ID,
		Metric:    req.Metric,
		Target:    req.Target,
		Deadline:  req.Deadline,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.GoalService.DeleteGoal(r.Context(), profile.ID, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

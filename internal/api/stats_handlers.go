package api

import (
	"net/http"
	"time"
)

// statsWindow pulls the optional from/to bounds off the query string.
func statsWindow(r *http.Request) (from, to *time.Time, err error) {
	if from, err = timeQuery(r, "from"); err != nil {
		return nil, nil, err
	}
	if to, err = timeQuery(r, "to"); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (s *Server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	summary, err := s.StatsService.Summary(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleStatsHourly(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	from, to, err := statsWindow(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	hourly, err := s.StatsService.Hourly(r.Context(), profile.ID, from, to)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hourly": hourly})
}

func (s *Server) handleStatsDayOfWeek(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	from, to, err := statsWindow(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	days, err := s.StatsService.DayOfWeek(r.Context(), profile.ID, from, to)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day_of_week": days})
}

func (s *Server) handleStatsHeatmap(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	from, to, err := statsWindow(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	cells, err := s.StatsService.Heatmap(r.Context(), profile.ID, from, to)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"heatmap": cells})
}

func (s *Server) handleStatsStreaks(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	from, to, err := statsWindow(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	streaks, err := s.StatsService.Streaks(r.Context(), profile.ID, from, to)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"streaks": streaks})
}

package api

import (
	"net/http"
	"time"

	"github.com/vitorsp/perfboard/internal/chart"
	"github.com/vitorsp/perfboard/internal/errors"
	"github.com/vitorsp/perfboard/internal/models"
)

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	accounts, err := s.PortfolioService.ListAccounts(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	var req struct {
		Name     string `json:"name"`
		Broker   string `json:"broker"`
		Currency string `json:"currency"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	account, err := s.PortfolioService.CreateAccount(r.Context(), models.Account{
		ProfileID: profile.ID,
		Name:      req.Name,
		Broker:    req.Broker,
		Currency:  req.Currency,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.PortfolioService.DeleteAccount(r.Context(), profile.ID, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListFlows(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	flows, err := s.PortfolioService.ListFlows(r.Context(), profile.ID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"flows": flows})
}

func (s *Server) handleAddFlow(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Kind       string    `json:"kind"`
		Amount     float64   `json:"amount"`
		OccurredAt time.Time `json:"occurred_at"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	flow, err := s.PortfolioService.AddFlow(r.Context(), profile.ID, models.CashFlow{
		AccountID:  id,
		Kind:       req.Kind,
		Amount:     req.Amount,
		OccurredAt: req.OccurredAt,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, flow)
}

func (s *Server) handleAddValuation(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Value      float64   `json:"value"`
		MeasuredAt time.Time `json:"measured_at"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	valuation, err := s.PortfolioService.AddValuation(r.Context(), profile.ID, models.Valuation{
		AccountID:  id,
		Value:      req.Value,
		MeasuredAt: req.MeasuredAt,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, valuation)
}

// handlePerformance returns the raw time-weighted return series, or a
// date-bucketed chart series when ?interval=daily|monthly is given.
func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	switch interval := r.URL.Query().Get("interval"); interval {
	case "":
		points, err := s.PortfolioService.Performance(r.Context(), profile.ID, id)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"performance": points})
	case string(chart.Daily), string(chart.Monthly):
		series, err := s.PortfolioService.PerformanceSeries(r.Context(), profile.ID, id, chart.Interval(interval))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"interval": interval, "series": series})
	default:
		handleError(w, r, errors.NewBadRequestError("invalid interval: "+interval))
	}
}

func (s *Server) handleFeeSummaries(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	fees, err := s.PortfolioService.FeeSummaries(r.Context(), profile.ID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fees": fees})
}

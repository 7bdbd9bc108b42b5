package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListPrefs(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())

	all, err := s.PrefService.List(r.Context(), profile.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"preferences": all})
}

func (s *Server) handleGetPref(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	key := chi.URLParam(r, "key")

	value, ok, err := s.PrefService.Get(r.Context(), profile.ID, key)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

func (s *Server) handleSetPref(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	key := chi.URLParam(r, "key")

	var req struct {
		Value string `json:"value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.PrefService.Set(r.Context(), profile.ID, key, req.Value); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": key, "value": req.Value})
}

func (s *Server) handleRemovePref(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	key := chi.URLParam(r, "key")

	if err := s.PrefService.Remove(r.Context(), profile.ID, key); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	dashboard := chi.URLParam(r, "dashboard")

	ids, err := s.PrefService.GetLayout(r.Context(), profile.ID, dashboard)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dashboard": dashboard, "cards": ids})
}

func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	profile := profileFromContext(r.Context())
	dashboard := chi.URLParam(r, "dashboard")

	var req struct {
		Cards []string `json:"cards"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	saved, err := s.PrefService.SaveLayout(r.Context(), profile.ID, dashboard, req.Cards)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dashboard": dashboard, "cards": saved})
}

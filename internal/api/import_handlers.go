package api

import (
	"net/http"

	"github.com/vitorsp/perfboard/internal/logger"
)

// handleImport queues a background import of the selected profile's
// chess.com games and returns the job ID immediately. Completion is
// announced on the websocket.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	profile := profileFromContext(r.Context())

	jobID := s.ImportService.ImportGames(r.Context(), *profile)
	log.Info("import queued: import_id=%s", jobID)

	writeJSON(w, http.StatusAccepted, map[string]any{
		"import_id":  jobID,
		"profile_id": profile.ID,
	})
}

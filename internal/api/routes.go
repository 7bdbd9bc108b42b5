package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ws", s.handleWebSocket)

	r.Route("/api", func(r chi.Router) {
		// Profile management does not require an active profile.
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", s.handleListProfiles)
			r.Post("/", s.handleCreateProfile)
			r.Get("/{id}", s.handleGetProfile)
			r.Delete("/{id}", s.handleDeleteProfile)
			r.Post("/{id}/select", s.handleSelectProfile)
			r.Put("/{id}/timezone", s.handleUpdateTimezone)
			r.Post("/{id}/fide", s.handleLinkFIDE)
			r.Post("/{id}/onboarded", s.handleCompleteOnboarding)
		})

		// Everything below acts on the selected profile.
		r.Group(func(r chi.Router) {
			r.Use(s.profileMiddleware)

			r.Post("/import", s.handleImport)

			r.Route("/stats", func(r chi.Router) {
				r.Get("/summary", s.handleStatsSummary)
				r.Get("/hourly", s.handleStatsHourly)
				r.Get("/day-of-week", s.handleStatsDayOfWeek)
				r.Get("/heatmap", s.handleStatsHeatmap)
				r.Get("/streaks", s.handleStatsStreaks)
			})

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", s.handleListGoals)
				r.Post("/", s.handleCreateGoal)
				r.Delete("/{id}", s.handleDeleteGoal)
			})

			r.Route("/prefs", func(r chi.Router) {
				r.Get("/", s.handleListPrefs)
				r.Get("/{key}", s.handleGetPref)
				r.Put("/{key}", s.handleSetPref)
				r.Delete("/{key}", s.handleRemovePref)
			})

			r.Route("/layout", func(r chi.Router) {
				r.Get("/{dashboard}", s.handleGetLayout)
				r.Put("/{dashboard}", s.handleSaveLayout)
			})

			r.Route("/portfolio", func(r chi.Router) {
				r.Get("/accounts", s.handleListAccounts)
				r.Post("/accounts", s.handleCreateAccount)
				r.Delete("/accounts/{id}", s.handleDeleteAccount)
				r.Get("/accounts/{id}/flows", s.handleListFlows)
				r.Post("/accounts/{id}/flows", s.handleAddFlow)
				r.Post("/accounts/{id}/valuations", s.handleAddValuation)
				r.Get("/accounts/{id}/performance", s.handlePerformance)
				r.Get("/accounts/{id}/fees", s.handleFeeSummaries)
			})
		})
	})

	return r
}

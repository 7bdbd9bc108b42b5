// Package api is the JSON HTTP surface consumed by the dashboard
// front-end: profile management, stats aggregation endpoints, goals,
// preferences and layouts, the investing vertical, and the websocket
// event push.
package api

import (
	"github.com/vitorsp/perfboard/internal/events"
	"github.com/vitorsp/perfboard/internal/services"
)

type Server struct {
	ProfileService   services.ProfileService
	StatsService     services.StatsService
	GoalService      services.GoalService
	ImportService    services.ImportService
	PortfolioService services.PortfolioService
	PrefService      services.PreferenceService
	Hub              *events.Hub
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/service"
)

// Services groups everything the HTTP surface depends on, so Register stays
// readable as endpoints accumulate.
type Services struct {
	Players service.PlayerService
	Teams   service.TeamService
	Matches service.MatchService
	Scoring service.ScoringService
	Stats   service.StatsService
	Export  service.ExportService
	Admin   service.AdminService
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, probe Pinger, svcs Services) {
	h := NewHealthHandler(probe)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPlayerHandler(svcs.Players).Register(api)
		NewTeamHandler(svcs.Teams).Register(api)
		NewMatchHandler(svcs.Matches).Register(api)
		NewScoringHandler(svcs.Scoring).Register(api)
		NewStatsHandler(svcs.Stats).Register(api)
		NewExportHandler(svcs.Export).Register(api)
		NewAdminHandler(svcs.Admin).Register(api)
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/service"
	"github.com/crichub/cricket-stats-service/pkg/response"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

func (h *StatsHandler) Register(r *gin.RouterGroup) {
	// Match summary lives under the match wildcard: /api/v1/matches/:match_id/summary
	r.Group("/matches").GET("/:match_id/summary", h.matchSummary)
	// Career table keyed by player name across every match.
	r.Group("/stats").GET("/players", h.playerStats)
}

func (h *StatsHandler) matchSummary(c *gin.Context) {
	matchID, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil || matchID <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_id", Message: "must be a valid integer > 0"}}))
		return
	}
	summary, svcErr := h.svc.MatchSummary(c.Request.Context(), matchID)
	if svcErr != nil {
		response.WriteError(c, svcErr)
		return
	}
	response.WriteData(c, http.StatusOK, summary)
}

func (h *StatsHandler) playerStats(c *gin.Context) {
	stats, err := h.svc.PlayerStats(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, stats)
}

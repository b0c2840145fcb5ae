package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/repository"
	"github.com/crichub/cricket-stats-service/internal/service"
	"github.com/crichub/cricket-stats-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.POST("", h.create)
		// Stable wildcard name (match_id) shared with scoring/stats/export routes.
		g.GET("/:match_id", h.getByID)
		g.GET("", h.list)
	}
}

type createMatchRequest struct {
	Team1ID      int64  `json:"team1_id"`
	Team2ID      int64  `json:"team2_id"`
	TossWinnerID int64  `json:"toss_winner_id"`
	TossChoice   string `json:"toss_choice"`
	Overs        int    `json:"overs"`
	Date         string `json:"date"` // opaque, stored as given
}

func (h *MatchHandler) create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	match, err := h.svc.CreateMatch(c.Request.Context(), req.Team1ID, req.Team2ID, req.TossWinnerID, req.TossChoice, req.Overs, req.Date)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, match)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
	match, err := h.svc.GetMatch(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	page := repository.Page{Limit: limit, Offset: offset}
	res, err := h.svc.ListMatches(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/model"
	"github.com/crichub/cricket-stats-service/internal/service"
	"github.com/crichub/cricket-stats-service/pkg/response"
)

type ScoringHandler struct {
	svc service.ScoringService
}

func NewScoringHandler(svc service.ScoringService) *ScoringHandler { return &ScoringHandler{svc: svc} }

func (h *ScoringHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches/:match_id/balls")
	{
		g.POST("", h.record)
		g.GET("", h.listByMatch)
	}
}

type recordBallRequest struct {
	Innings  int    `json:"innings"`
	Over     int    `json:"over"`
	Ball     int    `json:"ball"`
	Batter   string `json:"batter"`
	Bowler   string `json:"bowler"`
	Runs     int    `json:"runs"`
	IsFour   bool   `json:"is_four"`
	IsSix    bool   `json:"is_six"`
	IsWicket bool   `json:"is_wicket"`
}

func (h *ScoringHandler) record(c *gin.Context) {
	matchID, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
	var req recordBallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	ball, err := h.svc.RecordBall(c.Request.Context(), model.Ball{
		MatchID:  matchID,
		Innings:  req.Innings,
		Over:     req.Over,
		Ball:     req.Ball,
		Batter:   req.Batter,
		Bowler:   req.Bowler,
		Runs:     req.Runs,
		IsFour:   req.IsFour,
		IsSix:    req.IsSix,
		IsWicket: req.IsWicket,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, ball)
}

func (h *ScoringHandler) listByMatch(c *gin.Context) {
	matchID, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil || matchID <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_id", Message: "must be a valid integer > 0"}}))
		return
	}
	balls, svcErr := h.svc.ListBallsByMatch(c.Request.Context(), matchID)
	if svcErr != nil {
		response.WriteError(c, svcErr)
		return
	}
	response.WriteData(c, http.StatusOK, balls)
}

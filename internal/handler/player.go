package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/repository"
	"github.com/crichub/cricket-stats-service/internal/service"
	"github.com/crichub/cricket-stats-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/players")
	{
		g.POST("", h.register)
		// Use a stable wildcard name (player_id) so nested routes can reuse it without Gin conflicts.
		g.GET("/:player_id", h.getByID)
		g.GET("", h.list)
		g.PUT("/:player_id", h.update)
		g.DELETE("/:player_id", h.delete)
	}
}

type playerRequest struct {
	Name string `json:"name"`
}

func (h *PlayerHandler) register(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // body parse details stay internal
		return
	}
	player, err := h.svc.RegisterPlayer(c.Request.Context(), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, player)
}

func (h *PlayerHandler) getByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("player_id"), 10, 64)
	player, err := h.svc.GetPlayer(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

func (h *PlayerHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	page := repository.Page{Limit: limit, Offset: offset}
	res, err := h.svc.ListPlayers(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *PlayerHandler) update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("player_id"), 10, 64)
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.UpdatePlayer(c.Request.Context(), id, req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

func (h *PlayerHandler) delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("player_id"), 10, 64)
	if err := h.svc.DeletePlayer(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

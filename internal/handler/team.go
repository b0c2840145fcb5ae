package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/repository"
	"github.com/crichub/cricket-stats-service/internal/service"
	"github.com/crichub/cricket-stats-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.POST("", h.create)
		g.GET("/:team_id", h.getByID)
		g.GET("", h.list)
		g.PUT("/:team_id", h.update)
		g.DELETE("/:team_id", h.delete)
		// Roster management nests under the same wildcard.
		g.POST("/:team_id/players", h.addPlayer)
		g.GET("/:team_id/players", h.listPlayers)
	}
}

type teamRequest struct {
	Name string `json:"name"`
}

type addTeamPlayerRequest struct {
	PlayerID int64 `json:"player_id"`
}

func (h *TeamHandler) create(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	team, err := h.svc.CreateTeam(c.Request.Context(), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, team)
}

func (h *TeamHandler) getByID(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	team, err := h.svc.GetTeam(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	page := repository.Page{Limit: limit, Offset: offset}
	res, err := h.svc.ListTeams(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *TeamHandler) update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	team, err := h.svc.UpdateTeam(c.Request.Context(), id, req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	if err := h.svc.DeleteTeam(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) addPlayer(c *gin.Context) {
	teamID, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	var req addTeamPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if err := h.svc.AddPlayerToTeam(c.Request.Context(), teamID, req.PlayerID); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) listPlayers(c *gin.Context) {
	teamID, _ := strconv.ParseInt(c.Param("team_id"), 10, 64)
	players, err := h.svc.ListTeamPlayers(c.Request.Context(), teamID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/service"
	"github.com/crichub/cricket-stats-service/pkg/response"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) Register(r *gin.RouterGroup) {
	// Destructive and irreversible. Any confirmation belongs to the caller.
	r.Group("/admin").POST("/reset", h.reset)
}

func (h *AdminHandler) reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"status": "reset"})
}

package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crichub/cricket-stats-service/internal/service"
	"github.com/crichub/cricket-stats-service/pkg/response"
)

type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(svc service.ExportService) *ExportHandler { return &ExportHandler{svc: svc} }

func (h *ExportHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches/:match_id/export")
	{
		// GET streams the CSV as a download; POST writes it server-side.
		g.GET("", h.download)
		g.POST("", h.writeFile)
	}
}

type exportRequest struct {
	Destination string `json:"destination"`
}

func (h *ExportHandler) download(c *gin.Context) {
	matchID, err := strconv.ParseInt(c.Param("match_id"), 10, 64)
	if err != nil || matchID <= 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "match_id", Message: "must be a valid integer > 0"}}))
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=match_%d.csv", matchID))
	if _, err := h.svc.WriteMatch(c.Request.Context(), matchID, c.Writer); err != nil {
		// Headers may already be out; the broken stream is the signal.
		_ = c.Error(err)
	}
}

func (h *ExportHandler) writeFile(c *gin.Context) {
	matchID, _ := strconv.ParseInt(c.Param("match_id"), 10, 64)
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	rows, err := h.svc.ExportMatch(c.Request.Context(), matchID, req.Destination)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"destination": req.Destination, "rows": rows})
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
)

// DashboardHandler handles the landing dashboard endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /api/v1/dashboard
// @Summary Role-shaped dashboard
// @Description Projects with progress and recent notifications; internal roles also get pending-approval and pending-upload shortlists.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}

	dash, err := h.dashboardService.Build(c.Request.Context(), viewer, token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, dash)
}

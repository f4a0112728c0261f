package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
)

const defaultNotificationLimit = 50

// NotificationHandler handles inbox and unread-badge endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications
// @Summary List the viewer's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	_, token, ok := extractViewer(c)
	if !ok {
		return
	}

	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	notifications, err := h.notificationService.List(c.Request.Context(), token, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, notifications)
}

// Count handles GET /api/v1/notifications/count
// @Summary Unread notification count
// @Description Served from a short-lived per-viewer cache; the UI polls this endpoint for the nav badge.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Router /notifications/count [get]
func (h *NotificationHandler) Count(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}

	count, err := h.notificationService.Count(c.Request.Context(), viewer, token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, count)
}

// MarkRead handles POST /api/v1/notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), viewer, token, notificationID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"marked_read": notificationID})
}

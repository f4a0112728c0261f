package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
)

// CommentHandler handles drawing comment thread endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List handles GET /api/v1/drawings/:id/comments
// @Summary List a drawing's comment thread
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	_, token, ok := extractViewer(c)
	if !ok {
		return
	}
	drawingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid drawing id")
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), token, drawingID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, comments)
}

// Add handles POST /api/v1/drawings/:id/comments
// @Summary Append a comment to a drawing's thread
// @Description Text plus optional attachment/voice-note references. Threads are append-only.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id}/comments [post]
func (h *CommentHandler) Add(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	drawingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid drawing id")
		return
	}

	var body struct {
		Text          string `json:"text"`
		AttachmentURL string `json:"attachment_url"`
		VoiceNoteURL  string `json:"voice_note_url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	comment, err := h.commentService.Add(c.Request.Context(), viewer, token, port.CommentInput{
		DrawingID:     drawingID,
		Text:          body.Text,
		AttachmentURL: body.AttachmentURL,
		VoiceNoteURL:  body.VoiceNoteURL,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, comment)
}

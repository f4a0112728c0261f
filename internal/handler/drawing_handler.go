package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
)

// DrawingHandler handles drawing list, detail, and lifecycle endpoints.
type DrawingHandler struct {
	drawingService service.DrawingService
}

// NewDrawingHandler creates a new DrawingHandler.
func NewDrawingHandler(drawingService service.DrawingService) *DrawingHandler {
	return &DrawingHandler{drawingService: drawingService}
}

// ListByProject handles GET /api/v1/projects/:id/drawings
// @Summary List drawings for a project
// @Description Each item carries the derived status, display record, and the actions enabled for the caller.
// @Tags drawings
// @Produce json
// @Security BearerAuth
// @Router /projects/{id}/drawings [get]
func (h *DrawingHandler) ListByProject(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project id")
		return
	}

	views, err := h.drawingService.List(c.Request.Context(), viewer, token, projectID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, views)
}

// Get handles GET /api/v1/drawings/:id
// @Summary Get one drawing with derived status and actions
// @Tags drawings
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id} [get]
func (h *DrawingHandler) Get(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	drawingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid drawing id")
		return
	}

	view, err := h.drawingService.Get(c.Request.Context(), viewer, token, drawingID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Progress handles GET /api/v1/projects/:id/progress
// @Summary Project completion summary
// @Description Counts per derived status plus completion percentage, N/A drawings excluded.
// @Tags drawings
// @Produce json
// @Security BearerAuth
// @Router /projects/{id}/progress [get]
func (h *DrawingHandler) Progress(c *gin.Context) {
	_, token, ok := extractViewer(c)
	if !ok {
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project id")
		return
	}

	progress, err := h.drawingService.Progress(c.Request.Context(), token, projectID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, progress)
}

// Upload handles POST /api/v1/drawings/:id/upload
// @Summary Upload a drawing file
// @Description Streams the multipart file through to the backend. Allowed only when the workflow enables the upload action for the caller.
// @Tags drawings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id}/upload [post]
func (h *DrawingHandler) Upload(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	drawingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid drawing id")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	input := port.DrawingUploadInput{
		DrawingID:   drawingID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}

	view, err := h.drawingService.Upload(c.Request.Context(), viewer, token, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, view)
}

// Approve handles POST /api/v1/drawings/:id/approve
// @Summary Approve a drawing under review
// @Tags drawings
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id}/approve [post]
func (h *DrawingHandler) Approve(c *gin.Context) {
	h.mutate(c, h.drawingService.Approve)
}

// Issue handles POST /api/v1/drawings/:id/issue
// @Summary Issue an approved drawing to external recipients
// @Tags drawings
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id}/issue [post]
func (h *DrawingHandler) Issue(c *gin.Context) {
	h.mutate(c, h.drawingService.Issue)
}

// MarkNotApplicable handles POST /api/v1/drawings/:id/not-applicable
// @Summary Exclude a drawing from the project's required set
// @Tags drawings
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id}/not-applicable [post]
func (h *DrawingHandler) MarkNotApplicable(c *gin.Context) {
	h.mutate(c, h.drawingService.MarkNotApplicable)
}

// RequestRevision handles POST /api/v1/drawings/:id/request-revision
// @Summary Send an issued drawing back for correction
// @Tags drawings
// @Produce json
// @Security BearerAuth
// @Router /drawings/{id}/request-revision [post]
func (h *DrawingHandler) RequestRevision(c *gin.Context) {
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
		Note string `json:"note"`
	}
	_ = c.ShouldBindJSON(&body) // note is optional

	view, err := h.drawingService.RequestRevision(c.Request.Context(), viewer, token, drawingID, body.Note)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// mutate is the shared shape of the body-less lifecycle endpoints.
func (h *DrawingHandler) mutate(c *gin.Context, call service.DrawingMutation) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	drawingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid drawing id")
		return
	}

	view, err := call(c.Request.Context(), viewer, token, drawingID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
)

// DirectoryHandler handles vendor, resource, and client directory endpoints.
type DirectoryHandler struct {
	directoryService service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directoryService service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// ListVendors handles GET /api/v1/directory/vendors
// @Summary List the vendor directory
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Router /directory/vendors [get]
func (h *DirectoryHandler) ListVendors(c *gin.Context) {
	_, token, ok := extractViewer(c)
	if !ok {
		return
	}
	vendors, err := h.directoryService.Vendors(c.Request.Context(), token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, vendors)
}

// CreateVendor handles POST /api/v1/directory/vendors
// @Summary Add a vendor (owner only)
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /directory/vendors [post]
func (h *DirectoryHandler) CreateVendor(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	var vendor domain.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	created, err := h.directoryService.CreateVendor(c.Request.Context(), viewer, token, vendor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, created)
}

// ListResources handles GET /api/v1/directory/resources
// @Summary List the resource directory
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Router /directory/resources [get]
func (h *DirectoryHandler) ListResources(c *gin.Context) {
	_, token, ok := extractViewer(c)
	if !ok {
		return
	}
	resources, err := h.directoryService.Resources(c.Request.Context(), token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, resources)
}

// CreateResource handles POST /api/v1/directory/resources
// @Summary Add a resource (owner only)
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /directory/resources [post]
func (h *DirectoryHandler) CreateResource(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	var resource domain.Resource
	if err := c.ShouldBindJSON(&resource); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	created, err := h.directoryService.CreateResource(c.Request.Context(), viewer, token, resource)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, created)
}

// ListClients handles GET /api/v1/directory/clients
// @Summary List the client directory
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Router /directory/clients [get]
func (h *DirectoryHandler) ListClients(c *gin.Context) {
	_, token, ok := extractViewer(c)
	if !ok {
		return
	}
	clients, err := h.directoryService.Clients(c.Request.Context(), token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, clients)
}

// CreateClient handles POST /api/v1/directory/clients
// @Summary Add a client account (owner only)
// @Tags directory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /directory/clients [post]
func (h *DirectoryHandler) CreateClient(c *gin.Context) {
	viewer, token, ok := extractViewer(c)
	if !ok {
		return
	}
	var client domain.ClientAccount
	if err := c.ShouldBindJSON(&client); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	created, err := h.directoryService.CreateClient(c.Request.Context(), viewer, token, client)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, created)
}

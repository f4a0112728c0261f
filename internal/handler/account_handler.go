package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
)

// AccountHandler handles registration and profile endpoints.
type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Register handles POST /api/v1/accounts/register
// @Summary Submit a registration request
// @Description Unauthenticated. The backend queues the request for owner approval.
// @Tags accounts
// @Accept json
// @Produce json
// @Router /accounts/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var request domain.RegistrationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	if err := h.accountService.Register(c.Request.Context(), request); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"status": "pending_approval"})
}

// Profile handles GET /api/v1/accounts/me
// @Summary The viewer's own account record
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Router /accounts/me [get]
func (h *AccountHandler) Profile(c *gin.Context) {
	_, token, ok := extractViewer(c)
	if !ok {
		return
	}

	profile, err := h.accountService.Profile(c.Request.Context(), token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, profile)
}

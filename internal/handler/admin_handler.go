package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-election-api/internal/dto"
	"github.com/noah-isme/sma-election-api/internal/models"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
	"github.com/noah-isme/sma-election-api/pkg/response"
)

type resetService interface {
	Reset(ctx context.Context, scope models.ResetScope, actor *models.JWTClaims) error
}

// AdminHandler exposes destructive admin operations.
type AdminHandler struct {
	resets resetService
}

// NewAdminHandler builds a new handler.
func NewAdminHandler(resets resetService) *AdminHandler {
	return &AdminHandler{resets: resets}
}

// Reset godoc
// @Summary Reset election data
// @Description VOTOS deletes every vote. TUDO also deletes candidates and reopens candidatures.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ResetRequest true "Reset payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reset payload"))
		return
	}

	if err := h.resets.Reset(c.Request.Context(), req.Scope, claimsFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.MessageResponse{Message: "reset completed"}, nil)
}

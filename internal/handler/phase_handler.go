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

type phaseService interface {
	Current(ctx context.Context) (models.Phase, error)
	Set(ctx context.Context, phase models.Phase, actor *models.JWTClaims) (models.Phase, error)
}

// PhaseHandler exposes the election phase.
type PhaseHandler struct {
	service phaseService
}

// NewPhaseHandler builds a new handler.
func NewPhaseHandler(service phaseService) *PhaseHandler {
	return &PhaseHandler{service: service}
}

// Get godoc
// @Summary Current election phase
// @Tags Phase
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/phase [get]
func (h *PhaseHandler) Get(c *gin.Context) {
	phase, err := h.service.Current(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.PhaseResponse{Phase: phase}, nil)
}

// Set godoc
// @Summary Change election phase
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SetPhaseRequest true "Phase payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/settings/phase [post]
func (h *PhaseHandler) Set(c *gin.Context) {
	var req dto.SetPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid phase payload"))
		return
	}

	phase, err := h.service.Set(c.Request.Context(), req.Phase, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.PhaseResponse{Phase: phase}, nil)
}

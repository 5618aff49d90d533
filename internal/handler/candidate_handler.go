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

type candidateService interface {
	RegistrationOpen(ctx context.Context) error
	Register(ctx context.Context, req dto.CreateCandidateRequest) (*models.Candidate, error)
	List(ctx context.Context, query dto.CandidateListQuery, actor *models.JWTClaims) ([]models.Candidate, error)
	Dashboard(ctx context.Context, actor *models.JWTClaims) (*dto.AdminDashboardResponse, error)
	Decide(ctx context.Context, id int64, req dto.DecideCandidateRequest, actor *models.JWTClaims) (*models.Candidate, error)
}

// CandidateHandler exposes candidature and moderation endpoints.
type CandidateHandler struct {
	service candidateService
}

// NewCandidateHandler builds a new handler.
func NewCandidateHandler(service candidateService) *CandidateHandler {
	return &CandidateHandler{service: service}
}

// Create godoc
// @Summary Submit a candidature
// @Tags Candidates
// @Accept json
// @Produce json
// @Param payload body dto.CreateCandidateRequest true "Candidate payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a closed phase wins over a malformed body
		if openErr := h.service.RegistrationOpen(c.Request.Context()); openErr != nil {
			response.Error(c, openErr)
			return
		}
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid candidate payload"))
		return
	}

	candidate, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, candidate)
}

// List godoc
// @Summary List candidates
// @Description Approved candidates by default. Admin tokens list every status when none is given.
// @Tags Candidates
// @Produce json
// @Param status query string false "PENDENTE, APROVADO or REJEITADO"
// @Param gradeYear query string false "Grade label"
// @Param classLetter query string false "A, B or C"
// @Success 200 {object} response.Envelope
// @Router /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	var query dto.CandidateListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	candidates, err := h.service.List(c.Request.Context(), query, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, candidates, map[string]interface{}{"total": len(candidates)})
}

// Dashboard godoc
// @Summary Moderation dashboard
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *CandidateHandler) Dashboard(c *gin.Context) {
	res, err := h.service.Dashboard(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// Decide godoc
// @Summary Approve or reject a candidate
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Candidate ID"
// @Param payload body dto.DecideCandidateRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/candidates/{id} [patch]
func (h *CandidateHandler) Decide(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.DecideCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid decision payload"))
		return
	}

	candidate, err := h.service.Decide(c.Request.Context(), id, req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, candidate, nil)
}

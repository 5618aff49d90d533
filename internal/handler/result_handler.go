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

type resultService interface {
	Tally(ctx context.Context, query dto.ResultQuery) ([]models.ResultRow, error)
}

// ResultHandler exposes vote tallies.
type ResultHandler struct {
	service resultService
}

// NewResultHandler builds a new handler.
func NewResultHandler(service resultService) *ResultHandler {
	return &ResultHandler{service: service}
}

// Tally godoc
// @Summary Ranked results
// @Description Approved candidates ordered by votes. Served on /results and /admin/results.
// @Tags Results
// @Produce json
// @Param gradeYear query string false "Grade label"
// @Param classLetter query string false "A, B or C"
// @Success 200 {object} response.Envelope
// @Router /results [get]
func (h *ResultHandler) Tally(c *gin.Context) {
	var query dto.ResultQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	rows, err := h.service.Tally(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-election-api/internal/dto"
	"github.com/noah-isme/sma-election-api/internal/models"
	"github.com/noah-isme/sma-election-api/internal/service"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
	"github.com/noah-isme/sma-election-api/pkg/response"
)

type exportService interface {
	CandidatesCSV(ctx context.Context, actor *models.JWTClaims) (*service.ExportFile, error)
	ResultsCSV(ctx context.Context, query dto.ResultQuery, actor *models.JWTClaims) (*service.ExportFile, error)
	ResultsPDF(ctx context.Context, query dto.ResultQuery, actor *models.JWTClaims) (*service.ExportFile, error)
}

// ExportHandler streams admin downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler builds a new handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CandidatesCSV godoc
// @Summary Export candidates as CSV
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/export/candidates.csv [get]
func (h *ExportHandler) CandidatesCSV(c *gin.Context) {
	file, err := h.service.CandidatesCSV(c.Request.Context(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

// ResultsCSV godoc
// @Summary Export results as CSV
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Param gradeYear query string false "Grade label"
// @Param classLetter query string false "A, B or C"
// @Success 200 {file} file
// @Router /admin/export/results.csv [get]
func (h *ExportHandler) ResultsCSV(c *gin.Context) {
	h.results(c, h.service.ResultsCSV)
}

// ResultsPDF godoc
// @Summary Export results as PDF
// @Tags Admin
// @Produce application/pdf
// @Security BearerAuth
// @Param gradeYear query string false "Grade label"
// @Param classLetter query string false "A, B or C"
// @Success 200 {file} file
// @Router /admin/export/results.pdf [get]
func (h *ExportHandler) ResultsPDF(c *gin.Context) {
	h.results(c, h.service.ResultsPDF)
}

func (h *ExportHandler) results(c *gin.Context, render func(context.Context, dto.ResultQuery, *models.JWTClaims) (*service.ExportFile, error)) {
	var query dto.ResultQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters"))
		return
	}

	file, err := render(c.Request.Context(), query, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

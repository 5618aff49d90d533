package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-election-api/internal/dto"
	"github.com/noah-isme/sma-election-api/internal/models"
	"github.com/noah-isme/sma-election-api/internal/service"
)

type exportServiceMock struct {
	query dto.ResultQuery
}

func (m *exportServiceMock) CandidatesCSV(ctx context.Context, actor *models.JWTClaims) (*service.ExportFile, error) {
	if err := service.Authorize(actor); err != nil {
		return nil, err
	}
	return &service.ExportFile{Filename: "inscritos.csv", ContentType: "text/csv; charset=utf-8", Payload: []byte("id,name")}, nil
}

func (m *exportServiceMock) ResultsCSV(ctx context.Context, query dto.ResultQuery, actor *models.JWTClaims) (*service.ExportFile, error) {
	m.query = query
	return &service.ExportFile{Filename: "resultados.csv", ContentType: "text/csv; charset=utf-8", Payload: []byte("ano,turma,candidato,votos")}, nil
}

func (m *exportServiceMock) ResultsPDF(ctx context.Context, query dto.ResultQuery, actor *models.JWTClaims) (*service.ExportFile, error) {
	m.query = query
	return &service.ExportFile{Filename: "resultados.pdf", ContentType: "application/pdf", Payload: []byte("%PDF-1.3")}, nil
}

func TestExportHandlerCandidatesCSV(t *testing.T) {
	handler := NewExportHandler(&exportServiceMock{})
	c, w := newTestContext(http.MethodGet, "/api/admin/export/candidates.csv", nil, testAdmin)

	handler.CandidatesCSV(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="inscritos.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "id,name", w.Body.String())

	c, w = newTestContext(http.MethodGet, "/api/admin/export/candidates.csv", nil, nil)
	handler.CandidatesCSV(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExportHandlerResults(t *testing.T) {
	svc := &exportServiceMock{}
	handler := NewExportHandler(svc)

	c, w := newTestContext(http.MethodGet, "/api/admin/export/results.csv?classLetter=A", nil, testAdmin)
	handler.ResultsCSV(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", svc.query.ClassLetter)
	assert.Equal(t, `attachment; filename="resultados.csv"`, w.Header().Get("Content-Disposition"))

	c, w = newTestContext(http.MethodGet, "/api/admin/export/results.pdf", nil, testAdmin)
	handler.ResultsPDF(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/dto"
	"github.com/noah-isme/sma-election-api/internal/models"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
	"github.com/noah-isme/sma-election-api/pkg/export"
)

const (
	candidatesCSVFilename = "inscritos.csv"
	resultsCSVFilename    = "resultados.csv"
	resultsPDFFilename    = "resultados.pdf"
	resultsPDFTitle       = "Resultados da eleição"

	contentTypeCSV = "text/csv; charset=utf-8"
	contentTypePDF = "application/pdf"
)

var (
	candidateExportHeaders = []string{"id", "name", "gradeYear", "classLetter", "status", "createdAt"}
	resultExportHeaders    = []string{"ano", "turma", "candidato", "votos"}
)

type candidateLister interface {
	List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, error)
}

type leaderboardSource interface {
	Leaderboard(ctx context.Context, query dto.ResultQuery) ([]models.ResultRow, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders candidate and result downloads for admins.
type ExportService struct {
	candidates candidateLister
	results    leaderboardSource
	csv        csvRenderer
	pdf        pdfRenderer
	logger     *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(candidates candidateLister, results leaderboardSource, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{candidates: candidates, results: results, csv: csv, pdf: pdf, logger: logger}
}

// CandidatesCSV exports every candidate, oldest first.
func (s *ExportService) CandidatesCSV(ctx context.Context, actor *models.JWTClaims) (*ExportFile, error) {
	if err := Authorize(actor); err != nil {
		return nil, err
	}

	candidates, err := s.candidates.List(ctx, models.CandidateFilter{Order: models.SortOldestFirst})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list candidates")
	}

	dataset := export.Dataset{Headers: candidateExportHeaders}
	for _, c := range candidates {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"id":          strconv.FormatInt(c.ID, 10),
			"name":        c.Name,
			"gradeYear":   c.GradeYear,
			"classLetter": c.ClassLetter,
			"status":      string(c.Status),
			"createdAt":   c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render candidates export")
	}
	return &ExportFile{Filename: candidatesCSVFilename, ContentType: contentTypeCSV, Payload: payload}, nil
}

// ResultsCSV exports the leaderboard as delimited text.
func (s *ExportService) ResultsCSV(ctx context.Context, query dto.ResultQuery, actor *models.JWTClaims) (*ExportFile, error) {
	dataset, err := s.resultDataset(ctx, query, actor)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render results export")
	}
	return &ExportFile{Filename: resultsCSVFilename, ContentType: contentTypeCSV, Payload: payload}, nil
}

// ResultsPDF exports the leaderboard as a PDF table.
func (s *ExportService) ResultsPDF(ctx context.Context, query dto.ResultQuery, actor *models.JWTClaims) (*ExportFile, error) {
	dataset, err := s.resultDataset(ctx, query, actor)
	if err != nil {
		return nil, err
	}
	payload, err := s.pdf.Render(dataset, resultsPDFTitle)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render results pdf")
	}
	s.logger.Debug("results pdf rendered", zap.Int("rows", len(dataset.Rows)))
	return &ExportFile{Filename: resultsPDFFilename, ContentType: contentTypePDF, Payload: payload}, nil
}

func (s *ExportService) resultDataset(ctx context.Context, query dto.ResultQuery, actor *models.JWTClaims) (export.Dataset, error) {
	if err := Authorize(actor); err != nil {
		return export.Dataset{}, err
	}

	rows, err := s.results.Leaderboard(ctx, query)
	if err != nil {
		return export.Dataset{}, err
	}

	dataset := export.Dataset{Headers: resultExportHeaders}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ano":       row.GradeYear,
			"turma":     row.ClassLetter,
			"candidato": row.Name,
			"votos":     strconv.Itoa(row.Votes),
		})
	}
	return dataset, nil
}

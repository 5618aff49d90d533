package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/dto"
	"github.com/noah-isme/sma-election-api/internal/models"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
)

type candidateRepository interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status models.CandidateStatus) (*models.Candidate, error)
}

type candidateMetrics interface {
	IncCandidateRegistered()
	IncCandidateDecision(status string)
}

// CandidateService manages candidatures and their moderation.
type CandidateService struct {
	repo      candidateRepository
	phases    phaseReader
	validator *validator.Validate
	logger    *zap.Logger
	metrics   candidateMetrics
}

// NewCandidateService constructs a CandidateService.
func NewCandidateService(repo candidateRepository, phases phaseReader, validate *validator.Validate, logger *zap.Logger, metrics candidateMetrics) *CandidateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CandidateService{repo: repo, phases: phases, validator: validate, logger: logger, metrics: metrics}
}

// RegistrationOpen reports a phase violation unless candidatures are open.
func (s *CandidateService) RegistrationOpen(ctx context.Context) error {
	phase, err := s.phases.Current(ctx)
	if err != nil {
		return err
	}
	if phase != models.PhaseCandidature {
		return appErrors.Clone(appErrors.ErrPhaseViolation, "candidatures are closed")
	}
	return nil
}

// Register records a new pending candidature while candidatures are open.
func (s *CandidateService) Register(ctx context.Context, req dto.CreateCandidateRequest) (*models.Candidate, error) {
	if err := s.RegistrationOpen(ctx); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.GradeYear = strings.TrimSpace(req.GradeYear)
	req.ClassLetter = strings.TrimSpace(req.ClassLetter)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid candidate payload")
	}

	candidate := &models.Candidate{
		Name:        req.Name,
		GradeYear:   req.GradeYear,
		ClassLetter: req.ClassLetter,
		Status:      models.CandidateStatusPending,
	}
	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create candidate")
	}

	if s.metrics != nil {
		s.metrics.IncCandidateRegistered()
	}
	return candidate, nil
}

// List returns candidates newest first. Anonymous callers see approved
// candidates unless they ask for a known status; admins see every status
// unless they filter.
func (s *CandidateService) List(ctx context.Context, query dto.CandidateListQuery, actor *models.JWTClaims) ([]models.Candidate, error) {
	filter := models.CandidateFilter{
		GradeYear:   strings.TrimSpace(query.GradeYear),
		ClassLetter: strings.ToUpper(strings.TrimSpace(query.ClassLetter)),
		Order:       models.SortNewestFirst,
	}
	if filter.ClassLetter != "" && !models.ValidClassLetter(filter.ClassLetter) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "classLetter must be A, B or C")
	}

	status := models.CandidateStatus(strings.ToUpper(strings.TrimSpace(query.Status)))
	switch {
	case status.Valid():
		filter.Status = &status
	case IsAdmin(actor) && status == "":
	case IsAdmin(actor):
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be PENDENTE, APROVADO or REJEITADO")
	default:
		approved := models.CandidateStatusApproved
		filter.Status = &approved
	}

	candidates, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list candidates")
	}
	return candidates, nil
}

// Dashboard returns the moderation queue (oldest first) and the approved
// candidates (newest first).
func (s *CandidateService) Dashboard(ctx context.Context, actor *models.JWTClaims) (*dto.AdminDashboardResponse, error) {
	if err := Authorize(actor); err != nil {
		return nil, err
	}

	pendingStatus := models.CandidateStatusPending
	pending, err := s.repo.List(ctx, models.CandidateFilter{Status: &pendingStatus, Order: models.SortOldestFirst})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list pending candidates")
	}

	approvedStatus := models.CandidateStatusApproved
	approved, err := s.repo.List(ctx, models.CandidateFilter{Status: &approvedStatus, Order: models.SortNewestFirst})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list approved candidates")
	}

	return &dto.AdminDashboardResponse{Pending: pending, Approved: approved}, nil
}

// Decide overwrites the status of a candidate with an approval or rejection.
func (s *CandidateService) Decide(ctx context.Context, id int64, req dto.DecideCandidateRequest, actor *models.JWTClaims) (*models.Candidate, error) {
	if err := Authorize(actor); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid candidate id")
	}
	req.Status = models.CandidateStatus(strings.ToUpper(strings.TrimSpace(string(req.Status))))
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status must be APROVADO or REJEITADO")
	}

	candidate, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update candidate")
	}

	s.logger.Info("candidate decided", zap.Int64("candidate_id", id), zap.String("status", string(req.Status)))
	if s.metrics != nil {
		s.metrics.IncCandidateDecision(string(req.Status))
	}
	return candidate, nil
}

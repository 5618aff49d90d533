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
	"github.com/noah-isme/sma-election-api/internal/repository"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
)

const (
	electorCodeMinLength = 3
	electorCodeMaxLength = 64
)

type voteRepository interface {
	Create(ctx context.Context, vote *models.Vote) error
	ExistsByElectorCode(ctx context.Context, code string) (bool, error)
}

type candidateLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Candidate, error)
}

type ballotMetrics interface {
	IncVoteCast()
}

// BallotConfig tunes the ballot box.
type BallotConfig struct {
	RequireElectorCode bool
}

// BallotService accepts votes for approved candidates while voting is open.
type BallotService struct {
	votes      voteRepository
	candidates candidateLookup
	phases     phaseReader
	validator  *validator.Validate
	logger     *zap.Logger
	metrics    ballotMetrics
	cfg        BallotConfig
}

// NewBallotService constructs a BallotService.
func NewBallotService(votes voteRepository, candidates candidateLookup, phases phaseReader, validate *validator.Validate, logger *zap.Logger, metrics ballotMetrics, cfg BallotConfig) *BallotService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BallotService{
		votes:      votes,
		candidates: candidates,
		phases:     phases,
		validator:  validate,
		logger:     logger,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// CastVote appends one vote for the candidate.
func (s *BallotService) CastVote(ctx context.Context, req dto.CastVoteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "candidateId must be a positive integer")
	}

	var electorCode *string
	if s.cfg.RequireElectorCode {
		code := strings.TrimSpace(req.ElectorCode)
		if n := len([]rune(code)); n < electorCodeMinLength || n > electorCodeMaxLength {
			return appErrors.Clone(appErrors.ErrValidation, "electorCode must have between 3 and 64 characters")
		}
		electorCode = &code
	}

	phase, err := s.phases.Current(ctx)
	if err != nil {
		return err
	}
	if phase != models.PhaseVoting {
		return appErrors.Clone(appErrors.ErrPhaseViolation, "voting is not open")
	}

	candidate, err := s.candidates.FindByID(ctx, req.CandidateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrCandidateUnavailable, "candidate not found or not approved")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load candidate")
	}
	if candidate.Status != models.CandidateStatusApproved {
		return appErrors.Clone(appErrors.ErrCandidateUnavailable, "candidate not found or not approved")
	}

	if electorCode != nil {
		used, err := s.votes.ExistsByElectorCode(ctx, *electorCode)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check elector code")
		}
		if used {
			return appErrors.Clone(appErrors.ErrDuplicateVote, "elector code already used")
		}
	}

	vote := &models.Vote{CandidateID: candidate.ID, ElectorCode: electorCode}
	if err := s.votes.Create(ctx, vote); err != nil {
		if errors.Is(err, repository.ErrDuplicateElectorCode) {
			return appErrors.Clone(appErrors.ErrDuplicateVote, "elector code already used")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record vote")
	}

	if s.metrics != nil {
		s.metrics.IncVoteCast()
	}
	return nil
}

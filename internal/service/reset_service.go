package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/models"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
)

type electionResetter interface {
	Reset(ctx context.Context, scope models.ResetScope) error
}

type resetMetrics interface {
	IncReset(scope string)
}

// ResetService wipes election data on admin request.
type ResetService struct {
	repo    electionResetter
	logger  *zap.Logger
	metrics resetMetrics
}

// NewResetService constructs a ResetService.
func NewResetService(repo electionResetter, logger *zap.Logger, metrics resetMetrics) *ResetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResetService{repo: repo, logger: logger, metrics: metrics}
}

// Reset deletes votes, or votes and candidates, in one transaction. The full
// scope also returns the election to the candidature phase.
func (s *ResetService) Reset(ctx context.Context, scope models.ResetScope, actor *models.JWTClaims) error {
	if err := Authorize(actor); err != nil {
		return err
	}
	scope = models.ResetScope(strings.ToUpper(strings.TrimSpace(string(scope))))
	if !scope.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "scope must be VOTOS or TUDO")
	}

	if err := s.repo.Reset(ctx, scope); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset election")
	}

	s.logger.Warn("election reset", zap.String("scope", string(scope)), zap.String("actor", actor.Subject))
	if s.metrics != nil {
		s.metrics.IncReset(string(scope))
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/models"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
)

type settingRepository interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}

type phaseMetrics interface {
	IncPhaseChange(phase string)
}

// phaseReader is what the other services need from the phase store.
type phaseReader interface {
	Current(ctx context.Context) (models.Phase, error)
}

// PhaseService owns the current election phase.
type PhaseService struct {
	repo    settingRepository
	logger  *zap.Logger
	metrics phaseMetrics
}

// NewPhaseService constructs a PhaseService.
func NewPhaseService(repo settingRepository, logger *zap.Logger, metrics phaseMetrics) *PhaseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhaseService{repo: repo, logger: logger, metrics: metrics}
}

// Current returns the stored phase, defaulting to candidature when unset. An
// unrecognised stored value is an internal error so no phase-gated operation
// proceeds on it.
func (s *PhaseService) Current(ctx context.Context) (models.Phase, error) {
	setting, err := s.repo.Get(ctx, models.PhaseSettingKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PhaseCandidature, nil
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load phase")
	}

	phase := models.Phase(setting.Value)
	if !phase.Valid() {
		s.logger.Error("unknown phase stored", zap.String("value", setting.Value))
		return "", appErrors.Clone(appErrors.ErrInternal, "stored election phase is invalid")
	}
	return phase, nil
}

// Set replaces the current phase. Any phase may follow any other.
func (s *PhaseService) Set(ctx context.Context, phase models.Phase, actor *models.JWTClaims) (models.Phase, error) {
	if err := Authorize(actor); err != nil {
		return "", err
	}
	if !phase.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, "phase must be one of CANDIDATURA, VOTACAO or ENCERRADA")
	}

	if err := s.repo.Upsert(ctx, models.PhaseSettingKey, string(phase)); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update phase")
	}

	s.logger.Info("election phase changed", zap.String("phase", string(phase)), zap.String("actor", actor.Subject))
	if s.metrics != nil {
		s.metrics.IncPhaseChange(string(phase))
	}
	return phase, nil
}

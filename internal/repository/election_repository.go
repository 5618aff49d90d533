package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-election-api/internal/models"
)

// ElectionRepository runs operations spanning several election tables.
type ElectionRepository struct {
	db *sqlx.DB
}

// NewElectionRepository constructs the repository.
func NewElectionRepository(db *sqlx.DB) *ElectionRepository {
	return &ElectionRepository{db: db}
}

// Reset deletes votes, and for the full scope also candidates, moving the
// phase back to candidature. Everything happens in one transaction.
func (r *ElectionRepository) Reset(ctx context.Context, scope models.ResetScope) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM votes"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("delete votes: %w", err)
	}

	if scope == models.ResetScopeEverything {
		if _, err := tx.ExecContext(ctx, "DELETE FROM candidates"); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("delete candidates: %w", err)
		}
		if err := upsertSetting(ctx, tx, models.PhaseSettingKey, string(models.PhaseCandidature)); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset tx: %w", err)
	}
	return nil
}

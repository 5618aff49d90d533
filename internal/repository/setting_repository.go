package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-election-api/internal/models"
)

const upsertSettingQuery = `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

// SettingRepository persists key/value settings such as the current phase.
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository constructs the repository.
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get fetches a setting by key. It returns sql.ErrNoRows when unset.
func (r *SettingRepository) Get(ctx context.Context, key string) (*models.Setting, error) {
	const query = `SELECT key, value, updated_at FROM settings WHERE key = $1`
	var setting models.Setting
	if err := r.db.GetContext(ctx, &setting, query, key); err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts or replaces a setting value.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	return upsertSetting(ctx, r.db, key, value)
}

// EnsureDefault inserts the value only when the key is missing.
func (r *SettingRepository) EnsureDefault(ctx context.Context, key, value string) error {
	const query = `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3) ON CONFLICT (key) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("ensure setting %s: %w", key, err)
	}
	return nil
}

func upsertSetting(ctx context.Context, exec sqlx.ExecerContext, key, value string) error {
	if _, err := exec.ExecContext(ctx, upsertSettingQuery, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestSettingRepositoryGet(t *testing.T) {
	db, mock, cleanup := newSettingRepoMock(t)
	defer cleanup()

	repo := NewSettingRepository(db)
	mock.ExpectQuery("SELECT key, value, updated_at FROM settings").
		WithArgs("phase").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).AddRow("phase", "VOTACAO", time.Now()))

	setting, err := repo.Get(context.Background(), "phase")
	require.NoError(t, err)
	assert.Equal(t, "VOTACAO", setting.Value)
}

func TestSettingRepositoryGetMissing(t *testing.T) {
	db, mock, cleanup := newSettingRepoMock(t)
	defer cleanup()

	repo := NewSettingRepository(db)
	mock.ExpectQuery("FROM settings").WithArgs("phase").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "phase")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSettingRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newSettingRepoMock(t)
	defer cleanup()

	repo := NewSettingRepository(db)
	mock.ExpectExec("INSERT INTO settings .* ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs("phase", "ENCERRADA", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), "phase", "ENCERRADA"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepositoryEnsureDefault(t *testing.T) {
	db, mock, cleanup := newSettingRepoMock(t)
	defer cleanup()

	repo := NewSettingRepository(db)
	mock.ExpectExec("ON CONFLICT \\(key\\) DO NOTHING").
		WithArgs("phase", "CANDIDATURA", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureDefault(context.Background(), "phase", "CANDIDATURA"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-election-api/internal/models"
)

func newCandidateRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

var candidateRowColumns = []string{"id", "name", "grade_year", "class_letter", "status", "created_at"}

func TestCandidateRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newCandidateRepoMock(t)
	defer cleanup()

	repo := NewCandidateRepository(db)
	mock.ExpectQuery("INSERT INTO candidates").
		WithArgs("Ana Souza", "8º Ano EF", "A", "PENDENTE", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	candidate := &models.Candidate{Name: "Ana Souza", GradeYear: "8º Ano EF", ClassLetter: "A", Status: models.CandidateStatusPending}
	require.NoError(t, repo.Create(context.Background(), candidate))
	assert.Equal(t, int64(7), candidate.ID)
	assert.False(t, candidate.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepositoryListAppliesFilters(t *testing.T) {
	db, mock, cleanup := newCandidateRepoMock(t)
	defer cleanup()

	repo := NewCandidateRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows(candidateRowColumns).
		AddRow(2, "Ana Souza", "8º Ano EF", "A", "APROVADO", now).
		AddRow(1, "Bruno Reis", "8º Ano EF", "A", "APROVADO", now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("FROM candidates WHERE 1=1 AND status = $1 AND grade_year = $2 AND class_letter = $3 ORDER BY created_at DESC, id DESC")).
		WithArgs("APROVADO", "8º Ano EF", "A").
		WillReturnRows(rows)

	status := models.CandidateStatusApproved
	result, err := repo.List(context.Background(), models.CandidateFilter{
		Status:      &status,
		GradeYear:   "8º Ano EF",
		ClassLetter: "A",
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepositoryListOldestFirstWithoutFilters(t *testing.T) {
	db, mock, cleanup := newCandidateRepoMock(t)
	defer cleanup()

	repo := NewCandidateRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM candidates WHERE 1=1 ORDER BY created_at ASC, id ASC")).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns))

	result, err := repo.List(context.Background(), models.CandidateFilter{Order: models.SortOldestFirst})
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newCandidateRepoMock(t)
	defer cleanup()

	repo := NewCandidateRepository(db)
	mock.ExpectQuery("FROM candidates WHERE id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCandidateRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newCandidateRepoMock(t)
	defer cleanup()

	repo := NewCandidateRepository(db)
	mock.ExpectQuery("UPDATE candidates SET status").
		WithArgs("REJEITADO", int64(3)).
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).AddRow(3, "Carlos Lima", "1º Ano EM", "B", "REJEITADO", time.Now()))

	candidate, err := repo.UpdateStatus(context.Background(), 3, models.CandidateStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.CandidateStatusRejected, candidate.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCandidateRepositoryCount(t *testing.T) {
	db, mock, cleanup := newCandidateRepoMock(t)
	defer cleanup()

	repo := NewCandidateRepository(db)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-election-api/internal/models"
)

func newVoteRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestVoteRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newVoteRepoMock(t)
	defer cleanup()

	repo := NewVoteRepository(db)
	mock.ExpectQuery("INSERT INTO votes").
		WithArgs(int64(4), nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	vote := &models.Vote{CandidateID: 4}
	require.NoError(t, repo.Create(context.Background(), vote))
	assert.Equal(t, int64(11), vote.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepositoryCreateDuplicateElectorCode(t *testing.T) {
	db, mock, cleanup := newVoteRepoMock(t)
	defer cleanup()

	repo := NewVoteRepository(db)
	code := "ALUNO-01"
	mock.ExpectQuery("INSERT INTO votes").
		WithArgs(int64(4), code, sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Vote{CandidateID: 4, ElectorCode: &code})
	assert.ErrorIs(t, err, ErrDuplicateElectorCode)
}

func TestVoteRepositoryExistsByElectorCode(t *testing.T) {
	db, mock, cleanup := newVoteRepoMock(t)
	defer cleanup()

	repo := NewVoteRepository(db)
	mock.ExpectQuery("SELECT 1 FROM votes").
		WithArgs("ALUNO-01").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM votes").
		WithArgs("ALUNO-02").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByElectorCode(context.Background(), "ALUNO-01")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByElectorCode(context.Background(), "ALUNO-02")
	require.NoError(t, err)
	assert.False(t, exists)
}

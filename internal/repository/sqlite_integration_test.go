package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-election-api/internal/models"
	"github.com/noah-isme/sma-election-api/pkg/database"
)

func newSQLiteDB(t *testing.T) *sqlx.DB {
	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteElectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)

	candidates := NewCandidateRepository(db)
	votes := NewVoteRepository(db)
	settings := NewSettingRepository(db)
	results := NewResultRepository(db)
	election := NewElectionRepository(db)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	ana := &models.Candidate{Name: "Ana Souza", GradeYear: "8º Ano EF", ClassLetter: "A", Status: models.CandidateStatusPending, CreatedAt: base}
	bia := &models.Candidate{Name: "Bia Melo", GradeYear: "8º Ano EF", ClassLetter: "A", Status: models.CandidateStatusPending, CreatedAt: base.Add(time.Minute)}
	require.NoError(t, candidates.Create(ctx, ana))
	require.NoError(t, candidates.Create(ctx, bia))
	assert.NotEqual(t, ana.ID, bia.ID)

	_, err := candidates.UpdateStatus(ctx, ana.ID, models.CandidateStatusApproved)
	require.NoError(t, err)

	approved := models.CandidateStatusApproved
	listed, err := candidates.List(ctx, models.CandidateFilter{Status: &approved})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Ana Souza", listed[0].Name)

	all, err := candidates.List(ctx, models.CandidateFilter{Order: models.SortOldestFirst})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ana.ID, all[0].ID)
	assert.True(t, all[0].CreatedAt.Equal(base))

	require.NoError(t, votes.Create(ctx, &models.Vote{CandidateID: ana.ID}))
	require.NoError(t, votes.Create(ctx, &models.Vote{CandidateID: ana.ID}))

	code := "ALUNO-01"
	require.NoError(t, votes.Create(ctx, &models.Vote{CandidateID: ana.ID, ElectorCode: &code}))
	assert.ErrorIs(t, votes.Create(ctx, &models.Vote{CandidateID: ana.ID, ElectorCode: &code}), ErrDuplicateElectorCode)

	rows, err := results.Tally(ctx, models.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Votes)

	require.NoError(t, settings.Upsert(ctx, models.PhaseSettingKey, string(models.PhaseVoting)))
	require.NoError(t, settings.EnsureDefault(ctx, models.PhaseSettingKey, string(models.PhaseCandidature)))
	phase, err := settings.Get(ctx, models.PhaseSettingKey)
	require.NoError(t, err)
	assert.Equal(t, string(models.PhaseVoting), phase.Value)

	require.NoError(t, election.Reset(ctx, models.ResetScopeVotes))
	rows, err = results.Tally(ctx, models.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Votes)

	require.NoError(t, election.Reset(ctx, models.ResetScopeEverything))
	total, err := candidates.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
	phase, err = settings.Get(ctx, models.PhaseSettingKey)
	require.NoError(t, err)
	assert.Equal(t, string(models.PhaseCandidature), phase.Value)
}

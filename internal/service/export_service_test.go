package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/dto"
	"github.com/noah-isme/sma-election-api/internal/models"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
)

type leaderboardStub struct {
	rows  []models.ResultRow
	query dto.ResultQuery
}

func (l *leaderboardStub) Leaderboard(ctx context.Context, query dto.ResultQuery) ([]models.ResultRow, error) {
	l.query = query
	return l.rows, nil
}

func TestExportServiceCandidatesCSV(t *testing.T) {
	repo := newCandidateRepoStub()
	repo.listResult = []models.Candidate{
		{ID: 1, Name: "Souza, Ana", GradeYear: "8º Ano EF", ClassLetter: "A", Status: models.CandidateStatusApproved, CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{ID: 2, Name: `Carlos "Caca" Lima`, GradeYear: "1º Ano EM", ClassLetter: "B", Status: models.CandidateStatusPending, CreatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)},
	}
	svc := NewExportService(repo, &leaderboardStub{}, zap.NewNop(), nil, nil)

	file, err := svc.CandidatesCSV(context.Background(), adminActor)
	require.NoError(t, err)
	assert.Equal(t, "inscritos.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Equal(t, "id,name,gradeYear,classLetter,status,createdAt\n"+
		"1,\"Souza, Ana\",8º Ano EF,A,APROVADO,2026-03-01T08:00:00Z\n"+
		"2,\"Carlos \"\"Caca\"\" Lima\",1º Ano EM,B,PENDENTE,2026-03-02T09:30:00Z", string(file.Payload))

	require.Len(t, repo.filters, 1)
	assert.Nil(t, repo.filters[0].Status)
	assert.Equal(t, models.SortOldestFirst, repo.filters[0].Order)
}

func TestExportServiceResultsCSV(t *testing.T) {
	results := &leaderboardStub{rows: []models.ResultRow{
		{ID: 1, Name: "Ana Souza", GradeYear: "8º Ano EF", ClassLetter: "A", Votes: 2},
		{ID: 3, Name: "Bia Melo", GradeYear: "8º Ano EF", ClassLetter: "A", Votes: 0},
	}}
	svc := NewExportService(newCandidateRepoStub(), results, zap.NewNop(), nil, nil)

	file, err := svc.ResultsCSV(context.Background(), dto.ResultQuery{GradeYear: "8º Ano EF"}, adminActor)
	require.NoError(t, err)
	assert.Equal(t, "resultados.csv", file.Filename)
	assert.Equal(t, "ano,turma,candidato,votos\n8º Ano EF,A,Ana Souza,2\n8º Ano EF,A,Bia Melo,0", string(file.Payload))
	assert.Equal(t, "8º Ano EF", results.query.GradeYear)
}

func TestExportServiceResultsCSVEmpty(t *testing.T) {
	svc := NewExportService(newCandidateRepoStub(), &leaderboardStub{}, zap.NewNop(), nil, nil)

	file, err := svc.ResultsCSV(context.Background(), dto.ResultQuery{}, adminActor)
	require.NoError(t, err)
	assert.Equal(t, "ano,turma,candidato,votos", string(file.Payload))
}

func TestExportServiceResultsPDF(t *testing.T) {
	results := &leaderboardStub{rows: []models.ResultRow{{ID: 1, Name: "Ana Souza", GradeYear: "8º Ano EF", ClassLetter: "A", Votes: 2}}}
	svc := NewExportService(newCandidateRepoStub(), results, zap.NewNop(), nil, nil)

	file, err := svc.ResultsPDF(context.Background(), dto.ResultQuery{}, adminActor)
	require.NoError(t, err)
	assert.Equal(t, "resultados.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Payload, []byte("%PDF")))
}

func TestExportServiceRequiresAdmin(t *testing.T) {
	svc := NewExportService(newCandidateRepoStub(), &leaderboardStub{}, zap.NewNop(), nil, nil)

	_, err := svc.CandidatesCSV(context.Background(), nil)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
	_, err = svc.ResultsCSV(context.Background(), dto.ResultQuery{}, nil)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
	_, err = svc.ResultsPDF(context.Background(), dto.ResultQuery{}, &models.JWTClaims{Role: "GUEST"})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

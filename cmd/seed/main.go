package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/models"
	"github.com/noah-isme/sma-election-api/internal/repository"
	"github.com/noah-isme/sma-election-api/pkg/config"
	"github.com/noah-isme/sma-election-api/pkg/database"
	"github.com/noah-isme/sma-election-api/pkg/logger"
)

var sampleCandidates = []models.Candidate{
	{Name: "Ana Souza", GradeYear: "8º Ano EF", ClassLetter: "A", Status: models.CandidateStatusApproved},
	{Name: "Carlos Lima", GradeYear: "1º Ano EM", ClassLetter: "B", Status: models.CandidateStatusPending},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logr.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()
	if err := repository.NewSettingRepository(db).EnsureDefault(ctx, models.PhaseSettingKey, string(models.PhaseCandidature)); err != nil {
		logr.Fatal("failed to seed phase", zap.Error(err))
	}

	candidates := repository.NewCandidateRepository(db)
	total, err := candidates.Count(ctx)
	if err != nil {
		logr.Fatal("failed to count candidates", zap.Error(err))
	}
	if total > 0 {
		logr.Info("candidates already present, skipping sample data", zap.Int("count", total))
		return
	}

	for i := range sampleCandidates {
		candidate := sampleCandidates[i]
		if err := candidates.Create(ctx, &candidate); err != nil {
			logr.Fatal("failed to seed candidate", zap.String("name", candidate.Name), zap.Error(err))
		}
		logr.Info("seeded candidate", zap.Int64("id", candidate.ID), zap.String("status", string(candidate.Status)))
	}
}

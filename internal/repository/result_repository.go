package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-election-api/internal/models"
)

// ResultRepository counts votes per approved candidate.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository constructs the repository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Tally returns approved candidates with their vote counts, most voted first.
func (r *ResultRepository) Tally(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error) {
	args := []interface{}{models.CandidateStatusApproved}
	conditions := []string{"c.status = $1"}

	if filter.GradeYear != "" {
		args = append(args, filter.GradeYear)
		conditions = append(conditions, fmt.Sprintf("c.grade_year = $%d", len(args)))
	}
	if filter.ClassLetter != "" {
		args = append(args, filter.ClassLetter)
		conditions = append(conditions, fmt.Sprintf("c.class_letter = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT c.id, c.name, c.grade_year, c.class_letter, COUNT(v.id) AS votes
        FROM candidates c LEFT JOIN votes v ON v.candidate_id = c.id
        WHERE %s
        GROUP BY c.id, c.name, c.grade_year, c.class_letter
        ORDER BY votes DESC, c.id ASC`, strings.Join(conditions, " AND "))

	rows := []models.ResultRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}
	return rows, nil
}

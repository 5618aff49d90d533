package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-election-api/internal/models"
)

const candidateColumns = "id, name, grade_year, class_letter, status, created_at"

// CandidateRepository manages persistence for candidates.
type CandidateRepository struct {
	db *sqlx.DB
}

// NewCandidateRepository constructs a CandidateRepository.
func NewCandidateRepository(db *sqlx.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create inserts a candidate and fills the generated ID.
func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	if candidate.CreatedAt.IsZero() {
		candidate.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO candidates (name, grade_year, class_letter, status, created_at)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowxContext(ctx, query,
		candidate.Name,
		candidate.GradeYear,
		candidate.ClassLetter,
		candidate.Status,
		candidate.CreatedAt,
	).Scan(&candidate.ID)
	if err != nil {
		return fmt.Errorf("create candidate: %w", err)
	}
	return nil
}

// FindByID fetches a candidate. It returns sql.ErrNoRows when absent.
func (r *CandidateRepository) FindByID(ctx context.Context, id int64) (*models.Candidate, error) {
	query := "SELECT " + candidateColumns + " FROM candidates WHERE id = $1"
	var candidate models.Candidate
	if err := r.db.GetContext(ctx, &candidate, query, id); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// List returns candidates matching the filter ordered by creation time.
func (r *CandidateRepository) List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, error) {
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.GradeYear != "" {
		args = append(args, filter.GradeYear)
		conditions = append(conditions, fmt.Sprintf("grade_year = $%d", len(args)))
	}
	if filter.ClassLetter != "" {
		args = append(args, filter.ClassLetter)
		conditions = append(conditions, fmt.Sprintf("class_letter = $%d", len(args)))
	}

	order := filter.Order
	if order != models.SortOldestFirst {
		order = models.SortNewestFirst
	}

	query := fmt.Sprintf("SELECT %s FROM candidates WHERE %s ORDER BY created_at %s, id %s",
		candidateColumns, strings.Join(conditions, " AND "), order, order)

	candidates := []models.Candidate{}
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

// UpdateStatus overwrites the status and returns the updated row. It returns
// sql.ErrNoRows when the candidate does not exist.
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id int64, status models.CandidateStatus) (*models.Candidate, error) {
	query := "UPDATE candidates SET status = $1 WHERE id = $2 RETURNING " + candidateColumns
	var candidate models.Candidate
	if err := r.db.GetContext(ctx, &candidate, query, status, id); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// Count returns the number of stored candidates.
func (r *CandidateRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM candidates"); err != nil {
		return 0, fmt.Errorf("count candidates: %w", err)
	}
	return total, nil
}

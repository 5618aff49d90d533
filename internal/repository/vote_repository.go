package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/sma-election-api/internal/models"
)

// ErrDuplicateElectorCode is returned when an elector code already voted.
var ErrDuplicateElectorCode = errors.New("elector code already used")

// VoteRepository appends ballots.
type VoteRepository struct {
	db *sqlx.DB
}

// NewVoteRepository constructs a VoteRepository.
func NewVoteRepository(db *sqlx.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Create appends a vote and fills the generated ID.
func (r *VoteRepository) Create(ctx context.Context, vote *models.Vote) error {
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO votes (candidate_id, elector_code, created_at) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, vote.CandidateID, vote.ElectorCode, vote.CreatedAt).Scan(&vote.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateElectorCode
		}
		return fmt.Errorf("create vote: %w", err)
	}
	return nil
}

// ExistsByElectorCode reports whether the code already cast a vote.
func (r *VoteRepository) ExistsByElectorCode(ctx context.Context, code string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, "SELECT 1 FROM votes WHERE elector_code = $1 LIMIT 1", code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check elector code: %w", err)
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

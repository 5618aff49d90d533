package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/dto"
	"github.com/noah-isme/sma-election-api/internal/models"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
)

type resultRepository interface {
	Tally(ctx context.Context, filter models.ResultFilter) ([]models.ResultRow, error)
}

var gradeOrdinals = func() map[string]int {
	ordinals := make(map[string]int, len(models.GradeYears))
	for i, grade := range models.GradeYears {
		ordinals[normalizeGrade(grade)] = i
	}
	return ordinals
}()

// GradeOrdinal returns the position of a grade label in the school year
// sequence. Unknown labels sort after every known grade.
func GradeOrdinal(label string) int {
	if ordinal, ok := gradeOrdinals[normalizeGrade(label)]; ok {
		return ordinal
	}
	return len(models.GradeYears)
}

func normalizeGrade(label string) string {
	label = strings.NewReplacer("º", "o", "°", "o").Replace(label)
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

// ResultService ranks approved candidates by votes.
type ResultService struct {
	repo   resultRepository
	logger *zap.Logger
}

// NewResultService constructs a ResultService.
func NewResultService(repo resultRepository, logger *zap.Logger) *ResultService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{repo: repo, logger: logger}
}

// Tally ranks candidates by votes, then by grade, class and id.
func (s *ResultService) Tally(ctx context.Context, query dto.ResultQuery) ([]models.ResultRow, error) {
	rows, err := s.load(ctx, query)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		if c := compareCohort(a, b); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
	return rows, nil
}

// Leaderboard groups candidates by grade and class, most voted first inside
// each class.
func (s *ResultService) Leaderboard(ctx context.Context, query dto.ResultQuery) ([]models.ResultRow, error) {
	rows, err := s.load(ctx, query)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if c := compareCohort(a, b); c != 0 {
			return c < 0
		}
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		return a.ID < b.ID
	})
	return rows, nil
}

func (s *ResultService) load(ctx context.Context, query dto.ResultQuery) ([]models.ResultRow, error) {
	filter := models.ResultFilter{
		GradeYear:   strings.TrimSpace(query.GradeYear),
		ClassLetter: strings.ToUpper(strings.TrimSpace(query.ClassLetter)),
	}
	if filter.ClassLetter != "" && !models.ValidClassLetter(filter.ClassLetter) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "classLetter must be A, B or C")
	}

	rows, err := s.repo.Tally(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to tally votes")
	}
	return rows, nil
}

// compareCohort orders by grade ordinal, then grade label, then class letter.
func compareCohort(a, b models.ResultRow) int {
	if ga, gb := GradeOrdinal(a.GradeYear), GradeOrdinal(b.GradeYear); ga != gb {
		return ga - gb
	}
	if c := strings.Compare(normalizeGrade(a.GradeYear), normalizeGrade(b.GradeYear)); c != 0 {
		return c
	}
	return strings.Compare(a.ClassLetter, b.ClassLetter)
}

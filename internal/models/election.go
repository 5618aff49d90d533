package models

import "time"

// Phase is the election mode gating which mutations are allowed.
type Phase string

const (
	PhaseCandidature Phase = "CANDIDATURA"
	PhaseVoting      Phase = "VOTACAO"
	PhaseClosed      Phase = "ENCERRADA"
)

// PhaseSettingKey is the settings row holding the current phase.
const PhaseSettingKey = "phase"

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseCandidature, PhaseVoting, PhaseClosed:
		return true
	}
	return false
}

// CandidateStatus tracks the moderation state of a candidate.
type CandidateStatus string

const (
	CandidateStatusPending  CandidateStatus = "PENDENTE"
	CandidateStatusApproved CandidateStatus = "APROVADO"
	CandidateStatusRejected CandidateStatus = "REJEITADO"
)

// Valid reports whether s is a known status.
func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusPending, CandidateStatusApproved, CandidateStatusRejected:
		return true
	}
	return false
}

// ClassLetters lists the accepted class letters.
var ClassLetters = []string{"A", "B", "C"}

// ValidClassLetter reports whether letter is an accepted class.
func ValidClassLetter(letter string) bool {
	for _, l := range ClassLetters {
		if l == letter {
			return true
		}
	}
	return false
}

// Candidate is a registrant for the election.
type Candidate struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	GradeYear   string          `db:"grade_year" json:"gradeYear"`
	ClassLetter string          `db:"class_letter" json:"classLetter"`
	Status      CandidateStatus `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// SortDirection orders candidate listings by creation time.
type SortDirection string

const (
	SortNewestFirst SortDirection = "DESC"
	SortOldestFirst SortDirection = "ASC"
)

// CandidateFilter scopes candidate listings. A nil Status lists every status.
type CandidateFilter struct {
	Status      *CandidateStatus
	GradeYear   string
	ClassLetter string
	Order       SortDirection
}

// Vote is an append-only ballot for an approved candidate.
type Vote struct {
	ID          int64     `db:"id" json:"id"`
	CandidateID int64     `db:"candidate_id" json:"candidateId"`
	ElectorCode *string   `db:"elector_code" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Setting is a persisted key/value pair.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ResetScope selects what a reset clears.
type ResetScope string

const (
	ResetScopeVotes      ResetScope = "VOTOS"
	ResetScopeEverything ResetScope = "TUDO"
)

// Valid reports whether s is a known scope.
func (s ResetScope) Valid() bool {
	return s == ResetScopeVotes || s == ResetScopeEverything
}

// GradeYears lists the school grades in ascending order.
var GradeYears = []string{
	"3º Ano EF", "4º Ano EF", "5º Ano EF", "6º Ano EF", "7º Ano EF", "8º Ano EF", "9º Ano EF",
	"1º Ano EM", "2º Ano EM", "3º Ano EM",
}

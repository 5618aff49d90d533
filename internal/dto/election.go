package dto

import "github.com/noah-isme/sma-election-api/internal/models"

// CreateCandidateRequest is the public candidature form.
type CreateCandidateRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=120"`
	GradeYear   string `json:"gradeYear" validate:"required"`
	ClassLetter string `json:"classLetter" validate:"required,oneof=A B C"`
}

// DecideCandidateRequest approves or rejects a candidate.
type DecideCandidateRequest struct {
	Status models.CandidateStatus `json:"status" validate:"required,oneof=APROVADO REJEITADO"`
}

// CastVoteRequest records a ballot. ElectorCode is only read when the
// elector code policy is enabled.
type CastVoteRequest struct {
	CandidateID int64  `json:"candidateId" validate:"required,gt=0"`
	ElectorCode string `json:"electorCode,omitempty"`
}

// SetPhaseRequest changes the election phase. PhaseService.Set checks the value.
type SetPhaseRequest struct {
	Phase models.Phase `json:"phase"`
}

// PhaseResponse wraps the current phase.
type PhaseResponse struct {
	Phase models.Phase `json:"phase"`
}

// ResetRequest wipes election data. ResetService.Reset checks the scope.
type ResetRequest struct {
	Scope models.ResetScope `json:"scope"`
}

// MessageResponse acknowledges commands without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// AdminDashboardResponse feeds the moderation screen.
type AdminDashboardResponse struct {
	Pending  []models.Candidate `json:"pendentes"`
	Approved []models.Candidate `json:"aprovados"`
}

// CandidateListQuery filters candidate listings.
type CandidateListQuery struct {
	Status      string `form:"status"`
	GradeYear   string `form:"gradeYear"`
	ClassLetter string `form:"classLetter"`
}

// ResultQuery narrows results to a grade and/or class.
type ResultQuery struct {
	GradeYear   string `form:"gradeYear"`
	ClassLetter string `form:"classLetter"`
}

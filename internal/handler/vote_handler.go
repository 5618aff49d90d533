package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-election-api/internal/dto"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
	"github.com/noah-isme/sma-election-api/pkg/response"
)

type ballotService interface {
	CastVote(ctx context.Context, req dto.CastVoteRequest) error
}

// VoteHandler accepts ballots.
type VoteHandler struct {
	service ballotService
}

// NewVoteHandler builds a new handler.
func NewVoteHandler(service ballotService) *VoteHandler {
	return &VoteHandler{service: service}
}

// Cast godoc
// @Summary Cast a vote
// @Tags Votes
// @Accept json
// @Produce json
// @Param payload body dto.CastVoteRequest true "Vote payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /votes [post]
func (h *VoteHandler) Cast(c *gin.Context) {
	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "candidateId must be a positive integer"))
		return
	}

	if err := h.service.CastVote(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.MessageResponse{Message: "vote recorded"})
}

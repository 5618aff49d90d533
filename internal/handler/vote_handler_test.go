package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-election-api/internal/dto"
	appErrors "github.com/noah-isme/sma-election-api/pkg/errors"
)

type ballotServiceMock struct {
	err  error
	last dto.CastVoteRequest
}

func (m *ballotServiceMock) CastVote(ctx context.Context, req dto.CastVoteRequest) error {
	m.last = req
	return m.err
}

func TestVoteHandlerCast(t *testing.T) {
	svc := &ballotServiceMock{}
	handler := NewVoteHandler(svc)
	c, w := newTestContext(http.MethodPost, "/api/votes", []byte(`{"candidateId":3}`), nil)

	handler.Cast(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), svc.last.CandidateID)

	var ack dto.MessageResponse
	decodeEnvelope(t, w, &ack)
	assert.Equal(t, "vote recorded", ack.Message)
}

func TestVoteHandlerCastRejectsNonInteger(t *testing.T) {
	handler := NewVoteHandler(&ballotServiceMock{})

	for _, body := range []string{`{"candidateId":"abc"}`, `{"candidateId":1.5}`, `nope`} {
		c, w := newTestContext(http.MethodPost, "/api/votes", []byte(body), nil)
		handler.Cast(c)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w, nil).Error.Code)
	}
}

func TestVoteHandlerCastMapsServiceErrors(t *testing.T) {
	cases := map[*appErrors.Error]int{
		appErrors.ErrPhaseViolation:       http.StatusBadRequest,
		appErrors.ErrCandidateUnavailable: http.StatusNotFound,
		appErrors.ErrDuplicateVote:        http.StatusConflict,
	}
	for appErr, status := range cases {
		handler := NewVoteHandler(&ballotServiceMock{err: appErrors.Clone(appErr, "")})
		c, w := newTestContext(http.MethodPost, "/api/votes", []byte(`{"candidateId":3}`), nil)
		handler.Cast(c)
		assert.Equal(t, status, w.Code)
		assert.Equal(t, appErr.Code, decodeEnvelope(t, w, nil).Error.Code)
	}
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-election-api/internal/middleware"
	"github.com/noah-isme/sma-election-api/internal/models"
	"github.com/noah-isme/sma-election-api/pkg/response"
)

var testAdmin = &models.JWTClaims{Role: models.RoleAdmin}

func newTestContext(method, target string, body []byte, actor *models.JWTClaims) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	if actor != nil {
		c.Set(middleware.ContextUserKey, actor)
	}
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) response.Envelope {
	raw := struct {
		Data  json.RawMessage        `json:"data"`
		Error *json.RawMessage       `json:"error"`
		Meta  map[string]interface{} `json:"meta"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))

	envelope := response.Envelope{Meta: raw.Meta}
	if raw.Error != nil {
		require.NoError(t, json.Unmarshal(*raw.Error, &envelope.Error))
	}
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return envelope
}

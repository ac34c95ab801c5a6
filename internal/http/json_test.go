package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fixhire/fixhire-api/internal/errors"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestWriteError_MapsCodesToStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.Validation("bad input"), http.StatusUnprocessableEntity},
		{"unauthorized", apperrors.Unauthorized("who are you"), http.StatusUnauthorized},
		{"forbidden", apperrors.Forbidden("not yours"), http.StatusForbidden},
		{"not found", apperrors.NotFound("gone"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("already there"), http.StatusConflict},
		{"upstream", apperrors.Upstream("provider down"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.want, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			env := decodeEnvelope(t, w)
			assert.NotEmpty(t, env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

func TestWriteError_ValidationDetailsLand(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, apperrors.ValidationDetails("Validation failed.", []string{
		"title is required (min 3 chars).",
		"work_mode is invalid.",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Validation failed.", env.Message)
	assert.Len(t, env.Errors, 2)
}

func TestWriteError_FieldPromotedWithoutDetails(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, apperrors.ValidationField("vin", "VIN must be 17 characters."))

	env := decodeEnvelope(t, w)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "vin: VIN must be 17 characters.", env.Errors[0])
}

func TestWriteError_UnknownErrorStaysOpaque(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Internal server error.", env.Message)
	assert.Empty(t, env.Errors)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok","bogus":1}`))

	ok := DecodeJSON(w, r, &dst)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid JSON payload.", env.Message)
	require.NotEmpty(t, env.Errors)
	assert.Contains(t, env.Errors[0], "bogus")
}

func TestDecodeJSON_AcceptsValidPayload(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))

	ok := DecodeJSON(w, r, &dst)
	assert.True(t, ok)
	assert.Equal(t, "ok", dst.Name)
}

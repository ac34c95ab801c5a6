package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/fixhire/fixhire-api/internal/errors"
)

// Envelope is the uniform response shape. Data is nil on errors; Errors is
// nil on success.
type Envelope struct {
	Message string   `json:"message"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors,omitempty"`
}

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteJSON(w, http.StatusBadRequest, Envelope{Message: "Invalid JSON payload.", Errors: []string{err.Error()}})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and body.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// WriteData writes a success envelope.
func WriteData(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{Message: message, Data: data})
}

// statusForCode maps application error codes onto HTTP statuses.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError maps a service error onto the envelope. Unknown errors become an
// opaque 500; the cause stays server-side.
func WriteError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		WriteJSON(w, http.StatusInternalServerError, Envelope{Message: "Internal server error."})
		return
	}

	env := Envelope{Message: appErr.Message, Errors: appErr.Details}
	if appErr.Field != "" && len(env.Errors) == 0 {
		env.Errors = []string{appErr.Field + ": " + appErr.Message}
	}
	WriteJSON(w, statusForCode(appErr.Code), env)
}

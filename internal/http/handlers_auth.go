// Package httpx provides HTTP handlers and utilities for the FixHire API.
package httpx

import (
	"net/http"
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/service"
)

// AuthHandlers provides HTTP handlers for registration, login, and session
// introspection.
type AuthHandlers struct {
	Svc *service.AuthService
}

type sessionPayload struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func newSessionPayload(user *model.User, sess *model.Session) sessionPayload {
	return sessionPayload{
		User:      user,
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.UTC(),
	}
}

// Register handles HTTP requests to create a new account. The fresh session
// token rides back in the response so the client can authenticate right away.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, sess, err := h.Svc.Register(r.Context(), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, "Registration successful.", newSessionPayload(user, sess))
}

// Login handles HTTP requests to authenticate with email and password.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, sess, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Login successful.", newSessionPayload(user, sess))
}

// Me handles HTTP requests for the authenticated account profile.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.Me(r.Context(), actor.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", user)
}

// Logout handles HTTP requests to revoke the session behind the request.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := SessionTokenFromContext(r.Context())
	if token == "" {
		WriteJSON(w, http.StatusUnauthorized, Envelope{Message: "Authentication required."})
		return
	}

	if err := h.Svc.Logout(r.Context(), token); err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Logged out.", nil)
}

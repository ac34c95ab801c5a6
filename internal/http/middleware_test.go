package httpx

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/mocks"
	"github.com/fixhire/fixhire-api/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newTestAuthService(ctrl *gomock.Controller) (*service.AuthService, *mocks.MockSessionStore) {
	sessions := mocks.NewMockSessionStore(ctrl)
	return service.NewAuthService(service.AuthServiceOptions{
		UserRepo: mocks.NewMockUserRepository(ctrl),
		Sessions: sessions,
	}), sessions
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, _ := newTestAuthService(ctrl)
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without credentials")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Authentication required.", env.Message)
}

func TestRequireAuth_MalformedScheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, _ := newTestAuthService(ctrl)
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without credentials")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, sessions := newTestAuthService(ctrl)
	sessions.EXPECT().Get(gomock.Any(), "nope").Return(model.Session{}, assert.AnError)

	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with an unknown token")
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	r.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid or expired session.", env.Message)
}

func TestRequireAuth_InjectsActorAndToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth, sessions := newTestAuthService(ctrl)
	sessions.EXPECT().Get(gomock.Any(), "tok-123").Return(model.Session{
		Token:     "tok-123",
		UserID:    "user-1",
		Role:      model.RoleEmployer,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	var seen model.Actor
	var seenToken string
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		seen = actor
		seenToken = SessionTokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	r.Header.Set("Authorization", "Bearer tok-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, model.Actor{ID: "user-1", Role: model.RoleEmployer}, seen)
	assert.Equal(t, "tok-123", seenToken)
}

func TestRecover_TurnsPanicInto500(t *testing.T) {
	handler := Recover(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Internal server error.", env.Message)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestLogging_PreservesStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), "status=418")
}

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/mocks"
	"github.com/fixhire/fixhire-api/internal/service"
)

// routerMocks bundles the repository doubles behind a fully wired router.
type routerMocks struct {
	users     *mocks.MockUserRepository
	sessions  *mocks.MockSessionStore
	customers *mocks.MockCustomerRepository
	vehicles  *mocks.MockVehicleRepository
	jobs      *mocks.MockIntakeJobRepository
	generator *mocks.MockDiagnosisGenerator
	postings  *mocks.MockPostingRepository
	apps      *mocks.MockApplicationRepository
	ivs       *mocks.MockInterviewRepository
	meetings  *mocks.MockMeetingScheduler
	decoder   *mocks.MockVINDecoder
}

func newTestRouter(ctrl *gomock.Controller) (http.Handler, *routerMocks) {
	m := &routerMocks{
		users:     mocks.NewMockUserRepository(ctrl),
		sessions:  mocks.NewMockSessionStore(ctrl),
		customers: mocks.NewMockCustomerRepository(ctrl),
		vehicles:  mocks.NewMockVehicleRepository(ctrl),
		jobs:      mocks.NewMockIntakeJobRepository(ctrl),
		generator: mocks.NewMockDiagnosisGenerator(ctrl),
		postings:  mocks.NewMockPostingRepository(ctrl),
		apps:      mocks.NewMockApplicationRepository(ctrl),
		ivs:       mocks.NewMockInterviewRepository(ctrl),
		meetings:  mocks.NewMockMeetingScheduler(ctrl),
		decoder:   mocks.NewMockVINDecoder(ctrl),
	}

	router := NewRouter(RouterServices{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			UserRepo: m.users,
			Sessions: m.sessions,
		}),
		Intake: service.NewIntakeService(service.IntakeServiceOptions{
			CustomerRepo: m.customers,
			VehicleRepo:  m.vehicles,
			JobRepo:      m.jobs,
			Generator:    m.generator,
		}),
		Lookup: service.NewLookupService(service.LookupServiceOptions{
			CustomerRepo: m.customers,
			VehicleRepo:  m.vehicles,
			JobRepo:      m.jobs,
		}),
		VIN: service.NewVINService(service.VINServiceOptions{Decoder: m.decoder}),
		Postings: service.NewPostingService(service.PostingServiceOptions{
			PostingRepo: m.postings,
		}),
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			ApplicationRepo: m.apps,
			PostingRepo:     m.postings,
			InterviewRepo:   m.ivs,
		}),
		Interviews: service.NewInterviewService(service.InterviewServiceOptions{
			InterviewRepo:   m.ivs,
			ApplicationRepo: m.apps,
			PostingRepo:     m.postings,
			Meetings:        m.meetings,
		}),
		Logger: testLogger(),
	})
	return router, m
}

// expectSession makes the given bearer token resolve to an employer session.
func (m *routerMocks) expectSession(token string, role model.Role) {
	m.sessions.EXPECT().Get(gomock.Any(), token).Return(model.Session{
		Token:     token,
		UserID:    "user-1",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
}

func TestRouter_Healthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _ := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRouter_RegisterReturnsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, m := newTestRouter(ctrl)

	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, user *model.User) (*model.User, error) {
			created := *user
			created.ID = "user-1"
			return &created, nil
		})
	m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"name":"Ana Cruz","email":"ana@example.com","password":"Sup3rSecret","role":"employer"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Message string `json:"message"`
		Data    struct {
			User  model.User `json:"user"`
			Token string     `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Registration successful.", env.Message)
	assert.Equal(t, "user-1", env.Data.User.ID)
	assert.Equal(t, model.RoleEmployer, env.Data.User.Role)
	assert.NotEmpty(t, env.Data.Token)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _ := newTestRouter(ctrl)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/jobs"},
		{http.MethodGet, "/api/postings"},
		{http.MethodGet, "/api/applications"},
		{http.MethodGet, "/api/interviews"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestRouter_CreatePosting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, m := newTestRouter(ctrl)

	m.expectSession("tok-emp", model.RoleEmployer)
	m.postings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, job *model.JobPosting) (*model.JobPosting, error) {
			created := *job
			created.ID = "post-1"
			created.Status = model.PostingStatusDraft
			return &created, nil
		})

	body := `{"title":"Staff Nurse","description":"ICU staffing, night shift differential.","employment_type":"full_time","work_mode":"on_site","city":"Manila"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/postings", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer tok-emp")
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env struct {
		Data model.JobPosting `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "post-1", env.Data.ID)
	assert.Equal(t, model.PostingStatusDraft, env.Data.Status)
	assert.Equal(t, "user-1", env.Data.OwnerActorID)
}

func TestRouter_CreatePostingRejectsUnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, m := newTestRouter(ctrl)

	m.expectSession("tok-emp", model.RoleEmployer)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/postings", strings.NewReader(`{"title":"x","salary":90000}`))
	r.Header.Set("Authorization", "Bearer tok-emp")
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid JSON payload.", env.Message)
}

func TestRouter_ListPostingsInvalidFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, m := newTestRouter(ctrl)

	m.expectSession("tok-app", model.RoleApplicant)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/postings?work_mode=teleport", nil)
	r.Header.Set("Authorization", "Bearer tok-app")
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid work_mode filter.", env.Message)
}

func TestRouter_ListApplicationsInvalidScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, m := newTestRouter(ctrl)

	m.expectSession("tok-app", model.RoleApplicant)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/applications?scope=everything", nil)
	r.Header.Set("Authorization", "Bearer tok-app")
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_DecodeVINValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, m := newTestRouter(ctrl)

	m.expectSession("tok-emp", model.RoleEmployer)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/vin/decode?vin=TOOSHORT", nil)
	r.Header.Set("Authorization", "Bearer tok-emp")
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_LogoutRevokesOwnToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, m := newTestRouter(ctrl)

	m.expectSession("tok-emp", model.RoleEmployer)
	m.sessions.EXPECT().Delete(gomock.Any(), "tok-emp").Return(nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	r.Header.Set("Authorization", "Bearer tok-emp")
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Logged out.", env.Message)
}

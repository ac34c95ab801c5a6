package httpx

import (
	"log/slog"
	"net/http"

	"github.com/fixhire/fixhire-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Intake       *service.IntakeService
	Lookup       *service.LookupService
	VIN          *service.VINService
	Postings     *service.PostingService
	Applications *service.ApplicationService
	Interviews   *service.InterviewService
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. Everything under /api
// except register and login sits behind bearer authentication.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	wrap := func(h http.Handler) http.Handler { return h }
	if services.Auth != nil {
		wrap = RequireAuth(services.Auth)
	}

	registerAuthRoutes(mux, &AuthHandlers{Svc: services.Auth}, wrap)
	registerIntakeRoutes(mux, &IntakeHandlers{
		Svc:    services.Intake,
		Lookup: services.Lookup,
		VIN:    services.VIN,
	}, wrap)
	registerPostingRoutes(mux, &PostingHandlers{Svc: services.Postings}, wrap)
	registerApplicationRoutes(mux, &ApplicationHandlers{Svc: services.Applications}, wrap)
	registerInterviewRoutes(mux, &InterviewHandlers{Svc: services.Interviews}, wrap)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Recover(logger)(Logging(logger)(mux))
}

type mw = func(http.Handler) http.Handler

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, wrap mw) {
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.Handle("GET /api/auth/me", wrap(http.HandlerFunc(h.Me)))
	mux.Handle("POST /api/auth/logout", wrap(http.HandlerFunc(h.Logout)))
}

func registerIntakeRoutes(mux *http.ServeMux, h *IntakeHandlers, wrap mw) {
	mux.Handle("POST /api/jobs", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/jobs/{id}", wrap(http.HandlerFunc(h.GetByID)))
	mux.Handle("PATCH /api/jobs/{id}", wrap(http.HandlerFunc(h.Patch)))
	mux.Handle("GET /api/jobs/{id}/customer-summary", wrap(http.HandlerFunc(h.CustomerSummary)))
	mux.Handle("GET /api/jobs/{id}/mechanic-summary", wrap(http.HandlerFunc(h.MechanicSummary)))
	mux.Handle("GET /api/customers/lookup", wrap(http.HandlerFunc(h.CustomerLookup)))
	mux.Handle("GET /api/vin/decode", wrap(http.HandlerFunc(h.DecodeVIN)))
}

func registerPostingRoutes(mux *http.ServeMux, h *PostingHandlers, wrap mw) {
	mux.Handle("POST /api/postings", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/postings", wrap(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/postings/{id}", wrap(http.HandlerFunc(h.GetByID)))
	mux.Handle("PUT /api/postings/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/postings/{id}", wrap(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /api/postings/{id}/publish", wrap(http.HandlerFunc(h.Publish)))
	mux.Handle("POST /api/postings/{id}/archive", wrap(http.HandlerFunc(h.Archive)))
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers, wrap mw) {
	mux.Handle("POST /api/postings/{id}/apply", wrap(http.HandlerFunc(h.Apply)))
	mux.Handle("GET /api/applications", wrap(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/applications/{id}", wrap(http.HandlerFunc(h.GetByID)))
	mux.Handle("PUT /api/applications/{id}/status", wrap(http.HandlerFunc(h.UpdateStatus)))
}

func registerInterviewRoutes(mux *http.ServeMux, h *InterviewHandlers, wrap mw) {
	mux.Handle("POST /api/applications/{id}/interviews", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/interviews", wrap(http.HandlerFunc(h.List)))
	mux.Handle("PUT /api/interviews/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("POST /api/interviews/{id}/cancel", wrap(http.HandlerFunc(h.Cancel)))
}

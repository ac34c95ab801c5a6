package httpx

import (
	"net/http"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/service"
)

// ApplicationHandlers provides HTTP handlers for job applications.
type ApplicationHandlers struct {
	Svc *service.ApplicationService
}

const (
	defaultApplicationListLimit = 25
	maxApplicationListLimit     = 100
)

// Apply handles HTTP requests to apply to a published posting.
func (h *ApplicationHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	// The cover letter is optional, so an empty body is fine.
	var req model.ApplyRequest
	if r.ContentLength != 0 && !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.Apply(r.Context(), actor, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, "Application submitted.", app)
}

// GetByID handles HTTP requests to fetch one application with its status
// history and interview.
func (h *ApplicationHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	detail, err := h.Svc.Get(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", detail)
}

// UpdateStatus handles HTTP requests to move an application between statuses.
func (h *ApplicationHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req model.UpdateApplicationStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	app, err := h.Svc.UpdateStatus(r.Context(), actor, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Application status updated.", app)
}

// List handles HTTP requests to list applications. scope=mine lists the
// actor's own; scope=owned lists applications against postings they own.
func (h *ApplicationHandlers) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := model.ApplicationListOptions{
		Scope:  model.ApplicationScope(q.Get("scope")),
		Status: model.ApplicationStatus(q.Get("status")),
	}
	limit, offset := ParseLimitOffset(r, defaultApplicationListLimit, maxApplicationListLimit)

	apps, err := h.Svc.List(r.Context(), actor, opts, limit, offset)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", map[string]any{
		"applications": apps,
		"limit":        limit,
		"offset":       offset,
	})
}

package httpx

import (
	"net/http"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/service"
)

// InterviewHandlers provides HTTP handlers for interview scheduling.
type InterviewHandlers struct {
	Svc *service.InterviewService
}

// Create handles HTTP requests to schedule the interview for an application.
func (h *InterviewHandlers) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req model.CreateInterviewRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	iv, err := h.Svc.Create(r.Context(), actor, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, "Interview scheduled.", iv)
}

// Update handles HTTP requests to reschedule or otherwise edit an interview.
func (h *InterviewHandlers) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req model.UpdateInterviewRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	iv, err := h.Svc.Update(r.Context(), actor, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Interview updated.", iv)
}

// Cancel handles HTTP requests to cancel an interview.
func (h *InterviewHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	// The cancel reason is optional, so an empty body is fine.
	var req model.CancelInterviewRequest
	if r.ContentLength != 0 && !DecodeJSON(w, r, &req) {
		return
	}

	iv, err := h.Svc.Cancel(r.Context(), actor, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Interview cancelled.", iv)
}

// List handles HTTP requests for the actor's upcoming interviews, scoped by
// role.
func (h *InterviewHandlers) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	ivs, err := h.Svc.List(r.Context(), actor)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", map[string]any{"interviews": ivs})
}

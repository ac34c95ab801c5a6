package httpx

import (
	"net/http"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/service"
)

// PostingHandlers provides HTTP handlers for the job posting lifecycle.
type PostingHandlers struct {
	Svc *service.PostingService
}

const (
	defaultPostingListLimit = 25
	maxPostingListLimit     = 100 // Maximum number of postings that can be requested in one call
)

// Create handles HTTP requests to draft a new posting.
func (h *PostingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req model.CreatePostingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), actor, &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, "Posting created.", job)
}

// GetByID handles HTTP requests to fetch one posting.
func (h *PostingHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.GetByID(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", job)
}

// Update handles HTTP requests to edit posting fields.
func (h *PostingHandlers) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req model.UpdatePostingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Update(r.Context(), actor, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Posting updated.", job)
}

// Publish handles HTTP requests to open a posting to the public board.
func (h *PostingHandlers) Publish(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.Publish(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Posting published.", job)
}

// Archive handles HTTP requests to pull a posting off the public board.
func (h *PostingHandlers) Archive(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	job, err := h.Svc.Archive(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Posting archived.", job)
}

// Delete handles HTTP requests to remove a posting entirely.
func (h *PostingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Delete(r.Context(), actor, r.PathValue("id")); err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Posting deleted.", nil)
}

// List handles HTTP requests for the posting board. scope=owned returns the
// actor's own postings in every status; the default public scope is always
// published-only.
func (h *PostingHandlers) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := model.PostingListOptions{
		Status:         model.PostingStatus(q.Get("status")),
		Search:         q.Get("q"),
		EmploymentType: model.EmploymentType(q.Get("employment_type")),
		WorkMode:       model.WorkMode(q.Get("work_mode")),
		City:           q.Get("city"),
	}
	limit, offset := ParseLimitOffset(r, defaultPostingListLimit, maxPostingListLimit)

	var (
		jobs []*model.JobPosting
		err  error
	)
	if q.Get("scope") == "owned" {
		jobs, err = h.Svc.ListOwned(r.Context(), actor, opts, limit, offset)
	} else {
		opts.Status = ""
		jobs, err = h.Svc.ListPublic(r.Context(), opts, limit, offset)
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", map[string]any{
		"postings": jobs,
		"limit":    limit,
		"offset":   offset,
	})
}

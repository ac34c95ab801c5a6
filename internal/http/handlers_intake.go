package httpx

import (
	"net/http"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/service"
)

// IntakeHandlers provides HTTP handlers for the repair intake pipeline.
type IntakeHandlers struct {
	Svc    *service.IntakeService
	Lookup *service.LookupService
	VIN    *service.VINService
}

// Create handles HTTP requests to run the full intake pipeline: customer
// upsert, vehicle insert, AI diagnosis, job row.
func (h *IntakeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req model.CreateIntakeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Create(r.Context(), actor, &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, "Intake job created.", job)
}

// GetByID handles HTTP requests to fetch one intake job.
func (h *IntakeHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
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

// Patch handles HTTP requests to edit an intake job, including the guarded
// status transition.
func (h *IntakeHandlers) Patch(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req model.PatchIntakeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	job, err := h.Svc.Patch(r.Context(), actor, r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "Intake job updated.", job)
}

// CustomerSummary handles HTTP requests for the customer-facing plain-text
// summary of a job.
func (h *IntakeHandlers) CustomerSummary(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	summary, err := h.Svc.CustomerSummary(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", map[string]string{"summary": summary})
}

// MechanicSummary handles HTTP requests for the structured workshop summary
// of a job.
func (h *IntakeHandlers) MechanicSummary(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	summary, err := h.Svc.MechanicSummaryFor(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", summary)
}

// CustomerLookup handles HTTP requests to find a returning customer by phone.
func (h *IntakeHandlers) CustomerLookup(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	result, err := h.Lookup.ByPhone(r.Context(), actor, r.URL.Query().Get("phone"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", result)
}

// DecodeVIN handles HTTP requests to decode a VIN into vehicle facts.
func (h *IntakeHandlers) DecodeVIN(w http.ResponseWriter, r *http.Request) {
	facts, err := h.VIN.Decode(r.Context(), r.URL.Query().Get("vin"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteData(w, http.StatusOK, "OK", facts)
}

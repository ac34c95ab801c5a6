package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/authz"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/ports"
)

// IntakeServiceOptions groups dependencies for IntakeService.
type IntakeServiceOptions struct {
	CustomerRepo core.CustomerRepository
	VehicleRepo  core.VehicleRepository
	JobRepo      core.IntakeJobRepository
	Generator    ports.DiagnosisGenerator
	Now          func() time.Time
}

// IntakeService orchestrates the repair intake pipeline: payload validation,
// customer upsert, vehicle creation, AI diagnosis, and job persistence.
type IntakeService struct {
	customers core.CustomerRepository
	vehicles  core.VehicleRepository
	jobs      core.IntakeJobRepository
	generator ports.DiagnosisGenerator
	now       func() time.Time
}

// NewIntakeService constructs a new IntakeService.
func NewIntakeService(opts IntakeServiceOptions) *IntakeService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &IntakeService{
		customers: opts.CustomerRepo,
		vehicles:  opts.VehicleRepo,
		jobs:      opts.JobRepo,
		generator: opts.Generator,
		now:       now,
	}
}

func requireIntakeActor(actor model.Actor) error {
	if actor.IsAdmin() || actor.Role.IsOwnerRole() {
		return nil
	}
	return apperrors.Forbidden("Intake requires an employer or agency account.")
}

// Create runs the full intake pipeline. The customer and vehicle are
// persisted before generation; the job itself is only created when the AI
// response parses. A failed or unparseable generation surfaces as an upstream
// error carrying the raw text, and the customer upsert is idempotent by
// (owner, phone), so retries do not duplicate records.
func (s *IntakeService) Create(ctx context.Context, actor model.Actor, req *model.CreateIntakeRequest) (*model.IntakeJob, error) {
	if err := requireIntakeActor(actor); err != nil {
		return nil, err
	}

	req.Sanitize()
	if details := req.Validate(s.now()); len(details) > 0 {
		return nil, apperrors.ValidationDetails("Validation failed.", details)
	}

	customer, err := s.customers.UpsertByPhone(ctx, core.UpsertCustomerParams{
		OwnerActorID: actor.ID,
		Input:        req.Customer,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	vehicle, err := s.vehicles.Create(ctx, core.CreateVehicleParams{
		OwnerActorID: actor.ID,
		CustomerID:   customer.ID,
		Input:        req.Vehicle,
	})
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	out, err := s.generator.Generate(ctx, ports.GenerateInput{
		Customer:    req.Customer,
		Vehicle:     req.Vehicle,
		Diagnostic:  req.Diagnostic,
		Preferences: req.Preferences,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "AI generation failed.")
	}

	diagnosis, err := model.ParseDiagnosis(out.RawText)
	if err != nil {
		appErr := apperrors.Wrap(err, apperrors.ErrCodeUpstream, "AI returned a response that could not be parsed.")
		appErr.Details = []string{out.RawText}
		return nil, appErr
	}

	job, err := s.jobs.Create(ctx, &model.IntakeJob{
		OwnerActorID:     actor.ID,
		CustomerID:       customer.ID,
		VehicleID:        vehicle.ID,
		CustomerSnapshot: *customer,
		VehicleSnapshot:  *vehicle,
		OBD2Data:         req.Diagnostic.OBD2Data,
		Symptoms:         req.Diagnostic.Symptoms,
		Media:            req.Diagnostic.Media,
		Preferences:      req.Preferences,
		Diagnosis:        *diagnosis,
		RawAIText:        out.RawText,
		AIModelID:        out.ModelID,
		GeneratedOn:      s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create intake job: %w", err)
	}
	return job, nil
}

// GetByID retrieves a job. Jobs outside the actor's tenancy read as missing.
func (s *IntakeService) GetByID(ctx context.Context, actor model.Actor, id string) (*model.IntakeJob, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrIntakeNotFound) {
			return nil, apperrors.NotFound("Job not found.")
		}
		return nil, err
	}
	if !authz.CanAccessOwned(actor, job.OwnerActorID) {
		return nil, apperrors.NotFound("Job not found.")
	}
	return job, nil
}

// Patch applies the combined edit surface of a job: a status transition, a
// diagnosis field patch, and a media list replacement, in one write.
func (s *IntakeService) Patch(ctx context.Context, actor model.Actor, id string, req *model.PatchIntakeRequest) (*model.IntakeJob, error) {
	job, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	loadedStatus := job.Status

	if req.Status != nil {
		next := model.IntakeStatus(sanitize.CleanText(*req.Status, 40))
		if !next.Valid() {
			return nil, apperrors.Validation("Invalid status.")
		}
		if transErr := model.ValidateIntakeTransition(job.Status, next); transErr != nil {
			return nil, apperrors.Conflict(transErr.Error())
		}
		job.Status = next
		switch next {
		case model.IntakeStatusCancelled:
			job.CancelNotes = sanitize.CleanText(req.CancelNotes, 1000)
		case model.IntakeStatusCompleted:
			job.CancelNotes = ""
		}
	}

	if req.Diagnosis != nil {
		job.Diagnosis = req.Diagnosis.Apply(job.Diagnosis)
	}

	if media, mediaErr := req.SanitizedMedia(); mediaErr != nil {
		return nil, apperrors.Validation("diagnostic.media contains an invalid URL.")
	} else if media != nil {
		job.Media = media
	}

	updated, err := s.jobs.Update(ctx, job, loadedStatus)
	if err != nil {
		if errors.Is(err, data.ErrIntakeStatusChanged) {
			return nil, apperrors.Conflict("Job was modified concurrently. Reload and retry.")
		}
		return nil, err
	}
	return updated, nil
}

// CustomerSummary renders the short plain-text handout for the customer.
func (s *IntakeService) CustomerSummary(ctx context.Context, actor model.Actor, id string) (string, error) {
	job, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return "", err
	}

	pickup := job.Diagnosis.EstimatedPickupDate
	if pickup == "" {
		pickup = "TBD"
	}
	notes := job.Diagnosis.AdditionalMechanicNotes
	if notes == "" {
		notes = "-"
	}

	return fmt.Sprintf(
		"Vehicle: %s %s %s\nIssue: %s\nConfidence: %.0f%%\n\nEstimated Labor: %g hrs\nEstimated Pickup: %s\n\nNotes:\n%s",
		job.VehicleSnapshot.Year, job.VehicleSnapshot.Make, job.VehicleSnapshot.Model,
		job.Diagnosis.MostLikelyIssue, job.Diagnosis.ConfidenceLevel,
		job.Diagnosis.EstimatedLaborHours, pickup, notes,
	), nil
}

// MechanicSummary is the structured workshop view of a job.
type MechanicSummary struct {
	Customer    model.Customer        `json:"customer"`
	Vehicle     model.Vehicle         `json:"vehicle"`
	OBD2Data    string                `json:"obd2_data"`
	Symptoms    string                `json:"symptoms"`
	Media       []string              `json:"media"`
	Diagnosis   model.DiagnosisResult `json:"diagnosis"`
	Status      model.IntakeStatus    `json:"status"`
	CancelNotes string                `json:"cancel_notes"`
}

// MechanicSummaryFor builds the structured summary for the workshop floor.
func (s *IntakeService) MechanicSummaryFor(ctx context.Context, actor model.Actor, id string) (*MechanicSummary, error) {
	job, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return &MechanicSummary{
		Customer:    job.CustomerSnapshot,
		Vehicle:     job.VehicleSnapshot,
		OBD2Data:    job.OBD2Data,
		Symptoms:    job.Symptoms,
		Media:       job.Media,
		Diagnosis:   job.Diagnosis,
		Status:      job.Status,
		CancelNotes: job.CancelNotes,
	}, nil
}

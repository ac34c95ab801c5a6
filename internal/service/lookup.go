package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
)

// lookupLimit caps the vehicles and job summaries returned per customer.
const lookupLimit = 25

// LookupServiceOptions groups dependencies for LookupService.
type LookupServiceOptions struct {
	CustomerRepo core.CustomerRepository
	VehicleRepo  core.VehicleRepository
	JobRepo      core.IntakeJobRepository
}

// LookupService resolves a customer by phone along with their recent
// vehicles and job summaries.
type LookupService struct {
	customers core.CustomerRepository
	vehicles  core.VehicleRepository
	jobs      core.IntakeJobRepository
}

// NewLookupService constructs a new LookupService.
func NewLookupService(opts LookupServiceOptions) *LookupService {
	return &LookupService{customers: opts.CustomerRepo, vehicles: opts.VehicleRepo, jobs: opts.JobRepo}
}

// CustomerLookup is the lookup result. Found=false with nil fields means no
// customer exists under that phone for this actor.
type CustomerLookup struct {
	Found    bool                      `json:"found"`
	Customer *model.Customer           `json:"customer,omitempty"`
	Vehicles []*model.Vehicle          `json:"vehicles,omitempty"`
	Jobs     []*model.IntakeJobSummary `json:"jobs,omitempty"`
}

// ByPhone looks up a customer in the actor's tenancy.
func (s *LookupService) ByPhone(ctx context.Context, actor model.Actor, phone string) (*CustomerLookup, error) {
	if err := requireIntakeActor(actor); err != nil {
		return nil, err
	}

	normalized := sanitize.NormalizePhone(phone)
	if normalized == "" {
		return nil, apperrors.Validation("phone is required.")
	}
	if !sanitize.IsLikelyPhone(normalized) {
		return nil, apperrors.Validation("Invalid phone number format.")
	}

	customer, err := s.customers.FindByPhone(ctx, actor.ID, normalized)
	if err != nil {
		if errors.Is(err, data.ErrCustomerNotFound) {
			return &CustomerLookup{Found: false}, nil
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}

	vehicles, err := s.vehicles.ListByCustomer(ctx, customer.ID, lookupLimit)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	jobs, err := s.jobs.ListByCustomer(ctx, customer.ID, lookupLimit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return &CustomerLookup{Found: true, Customer: customer, Vehicles: vehicles, Jobs: jobs}, nil
}

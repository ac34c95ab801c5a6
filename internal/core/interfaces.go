package core

import (
	"context"

	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// CustomerRepository defines the interface for customer data operations.
// Customers are unique per (owner, phone) and upserted on intake.
type CustomerRepository interface {
	UpsertByPhone(ctx context.Context, params UpsertCustomerParams) (*model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	FindByPhone(ctx context.Context, ownerActorID, phone string) (*model.Customer, error)
}

// UpsertCustomerParams groups parameters for CustomerRepository.UpsertByPhone.
type UpsertCustomerParams struct {
	OwnerActorID string
	Input        model.CustomerInput
}

// VehicleRepository defines the interface for vehicle data operations.
// Vehicles are created once per intake and never updated.
type VehicleRepository interface {
	Create(ctx context.Context, params CreateVehicleParams) (*model.Vehicle, error)
	GetByID(ctx context.Context, id string) (*model.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Vehicle, error)
}

// CreateVehicleParams groups parameters for VehicleRepository.Create.
type CreateVehicleParams struct {
	OwnerActorID string
	CustomerID   string
	Input        model.VehicleInput
}

// IntakeJobRepository defines the interface for intake job data operations.
type IntakeJobRepository interface {
	Create(ctx context.Context, job *model.IntakeJob) (*model.IntakeJob, error)
	GetByID(ctx context.Context, id string) (*model.IntakeJob, error)
	// Update persists status, cancel notes, diagnosis, and media in one
	// write, conditional on the row still carrying the expected status.
	Update(ctx context.Context, job *model.IntakeJob, expected model.IntakeStatus) (*model.IntakeJob, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]*model.IntakeJobSummary, error)
}

// PostingRepository defines the interface for job posting data operations.
type PostingRepository interface {
	Create(ctx context.Context, job *model.JobPosting) (*model.JobPosting, error)
	GetByID(ctx context.Context, id string) (*model.JobPosting, error)
	Update(ctx context.Context, job *model.JobPosting) (*model.JobPosting, error)
	Delete(ctx context.Context, id string) (bool, error)
	// List applies owner scoping when OwnerActorID is set, otherwise
	// opts.PublishedOnly should be true.
	List(ctx context.Context, params ListPostingsParams) ([]*model.JobPosting, error)
}

// ListPostingsParams groups parameters for PostingRepository.List.
type ListPostingsParams struct {
	OwnerActorID string
	OwnerType    model.Role
	Opts         model.PostingListOptions
	Limit        int
	Offset       int
}

// ApplicationRepository defines the interface for job application data
// operations. Status changes and their history rows commit atomically.
type ApplicationRepository interface {
	// CreateWithHistory inserts the application and its initial submission
	// history row in one transaction. Duplicate (job, applicant) pairs
	// surface as a conflict.
	CreateWithHistory(ctx context.Context, app *model.JobApplication, history *model.StatusHistory) (*model.JobApplication, error)
	GetByID(ctx context.Context, id string) (*model.JobApplication, error)
	// UpdateStatusWithHistory re-reads the row inside the transaction,
	// re-validates nothing itself, writes the new status, and appends the
	// history row. All-or-nothing.
	UpdateStatusWithHistory(ctx context.Context, app *model.JobApplication, history *model.StatusHistory) (*model.JobApplication, error)
	List(ctx context.Context, params ListApplicationsParams) ([]*model.JobApplication, error)
	ListHistory(ctx context.Context, applicationID string) ([]*model.StatusHistory, error)
}

// ListApplicationsParams groups parameters for ApplicationRepository.List.
// Exactly one of ApplicantActorID or the owner pair is set unless the caller
// is an admin.
type ListApplicationsParams struct {
	ApplicantActorID string
	OwnerActorID     string
	OwnerType        model.Role
	Status           model.ApplicationStatus
	Limit            int
	Offset           int
}

// InterviewRepository defines the interface for interview data operations.
// At most one interview exists per application, enforced by a unique
// constraint.
type InterviewRepository interface {
	Create(ctx context.Context, iv *model.Interview) (*model.Interview, error)
	GetByID(ctx context.Context, id string) (*model.Interview, error)
	GetByApplication(ctx context.Context, applicationID string) (*model.Interview, error)
	// Update writes every mutable field, conditional on the row still
	// carrying the expected status.
	Update(ctx context.Context, iv *model.Interview, expected model.InterviewStatus) (*model.Interview, error)
	ListForActor(ctx context.Context, params ListInterviewsParams) ([]*model.Interview, error)
}

// ListInterviewsParams groups parameters for InterviewRepository.ListForActor.
type ListInterviewsParams struct {
	ApplicantActorID string
	OwnerActorID     string
	OwnerType        model.Role
}

package data

import "errors"

// Sort directions accepted by list queries.
const (
	sortDirAsc  = "ASC"
	sortDirDesc = "DESC"
)

// Shared sentinel errors for data-layer repositories.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailExists      = errors.New("email is already registered")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrIntakeNotFound   = errors.New("job not found")

	ErrPostingNotFound      = errors.New("job posting not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job")
	ErrInterviewNotFound    = errors.New("interview not found")
	ErrInterviewExists      = errors.New("interview already exists for this application")

	// Conditional updates hit zero rows when the status moved between the
	// caller's read and the write.
	ErrIntakeStatusChanged    = errors.New("job status changed concurrently")
	ErrInterviewStatusChanged = errors.New("interview status changed concurrently")
)

// Package mocks provides mock implementations for testing the hiring and
// intake services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository and port interfaces. The mocks are generated with go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockPostingRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mock for UserRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/fixhire/fixhire-api/internal/core UserRepository

// Generate mock for CustomerRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=customer_repository_mock.go github.com/fixhire/fixhire-api/internal/core CustomerRepository

// Generate mock for VehicleRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=vehicle_repository_mock.go github.com/fixhire/fixhire-api/internal/core VehicleRepository

// Generate mock for IntakeJobRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=intake_job_repository_mock.go github.com/fixhire/fixhire-api/internal/core IntakeJobRepository

// Generate mock for PostingRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=posting_repository_mock.go github.com/fixhire/fixhire-api/internal/core PostingRepository

// Generate mock for ApplicationRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=application_repository_mock.go github.com/fixhire/fixhire-api/internal/core ApplicationRepository

// Generate mock for InterviewRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=interview_repository_mock.go github.com/fixhire/fixhire-api/internal/core InterviewRepository

// Generate mock for DiagnosisGenerator interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=diagnosis_generator_mock.go github.com/fixhire/fixhire-api/internal/ports DiagnosisGenerator

// Generate mock for MeetingScheduler interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=meeting_scheduler_mock.go github.com/fixhire/fixhire-api/internal/ports MeetingScheduler

// Generate mock for VINDecoder interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=vin_decoder_mock.go github.com/fixhire/fixhire-api/internal/ports VINDecoder

// Generate mock for SessionStore interface from internal/ports package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/fixhire/fixhire-api/internal/ports SessionStore

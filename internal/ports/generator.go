package ports

// Package ports defines interfaces (hexagonal ports) for external
// collaborators. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	"github.com/fixhire/fixhire-api/internal/domain/model"
)

// GenerateInput carries everything the diagnosis prompt needs.
type GenerateInput struct {
	Customer    model.CustomerInput
	Vehicle     model.VehicleInput
	Diagnostic  model.DiagnosticInput
	Preferences model.Preferences
}

// GenerateOutput is the raw completion plus the model that produced it. The
// text is untrusted and goes through model.ParseDiagnosis before persistence.
type GenerateOutput struct {
	RawText string
	ModelID string
}

// DiagnosisGenerator produces a diagnosis completion for an intake payload.
// Single attempt, no retry; failures surface to the caller as upstream
// errors.
type DiagnosisGenerator interface {
	Generate(ctx context.Context, in GenerateInput) (GenerateOutput, error)
}

package service

import (
	"context"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/ports"
)

// VINServiceOptions groups dependencies for VINService.
type VINServiceOptions struct {
	Decoder ports.VINDecoder
}

// VINService validates VINs and delegates decoding to the external
// databases.
type VINService struct {
	decoder ports.VINDecoder
}

// NewVINService constructs a new VINService.
func NewVINService(opts VINServiceOptions) *VINService {
	return &VINService{decoder: opts.Decoder}
}

// Decode normalizes and validates the VIN, then runs the best-effort decode.
func (s *VINService) Decode(ctx context.Context, vin string) (ports.VINFacts, error) {
	normalized := sanitize.NormalizeVin(vin)
	if normalized == "" {
		return ports.VINFacts{}, apperrors.Validation("vin is required.")
	}
	if !sanitize.IsValidVin(normalized) {
		return ports.VINFacts{}, apperrors.Validation("Invalid VIN format. VIN must be 17 chars; no I/O/Q.")
	}

	facts, err := s.decoder.Decode(ctx, normalized)
	if err != nil {
		return ports.VINFacts{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "Failed to decode VIN.")
	}
	return facts, nil
}

package ports

import "context"

// VINFacts is the best-effort merge of the external VIN databases. Empty
// fields mean no source knew the answer. Sources reports per-database
// outcomes ("ok" or "unavailable") so callers can tell a sparse decode
// from a degraded one.
type VINFacts struct {
	VIN          string            `json:"vin"`
	Year         string            `json:"year"`
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Engine       string            `json:"engine"`
	Transmission string            `json:"transmission"`
	Trim         string            `json:"trim"`
	BodyClass    string            `json:"body_class"`
	Sources      map[string]string `json:"sources"`
}

// VINDecoder resolves a VIN against external vehicle databases.
type VINDecoder interface {
	Decode(ctx context.Context, vin string) (VINFacts, error)
}

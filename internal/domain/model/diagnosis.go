package model

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

// Limits applied when normalizing AI output and field edits.
const (
	MaxProbableCauses = 12
	MaxPartsNeeded    = 40
	MaxMediaURLs      = 25
	MaxLaborHours     = 999
	MaxConfidence     = 100
)

// ErrUnparseableDiagnosis is returned when the generation output is not a
// JSON object. The caller must surface the raw text and must not create the
// intake job.
var ErrUnparseableDiagnosis = errors.New("diagnosis output is not valid JSON")

// Likelihood rates a probable cause.
type Likelihood string

const (
	LikelihoodHigh   Likelihood = "high"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodLow    Likelihood = "low"
)

// coerceLikelihood maps arbitrary input onto the allowed set, defaulting to medium.
func coerceLikelihood(v string) Likelihood {
	switch Likelihood(sanitize.CleanText(v, 10)) {
	case LikelihoodHigh:
		return LikelihoodHigh
	case LikelihoodLow:
		return LikelihoodLow
	default:
		return LikelihoodMedium
	}
}

// PartSourcing says whether a part must be OEM.
type PartSourcing string

const (
	PartSourcingOEM         PartSourcing = "OEM"
	PartSourcingAftermarket PartSourcing = "aftermarket ok"
	PartSourcingUnspecified PartSourcing = "unspecified"
)

func coerceSourcing(v string) PartSourcing {
	switch PartSourcing(sanitize.CleanText(v, 40)) {
	case PartSourcingOEM:
		return PartSourcingOEM
	case PartSourcingAftermarket:
		return PartSourcingAftermarket
	default:
		return PartSourcingUnspecified
	}
}

// PartUrgency says when a part is needed.
type PartUrgency string

const (
	PartUrgencyRequired PartUrgency = "required_before_release"
	PartUrgencyUpgrade  PartUrgency = "upgrade_soon"
	PartUrgencyOptional PartUrgency = "optional"
)

func coerceUrgency(v string) PartUrgency {
	switch PartUrgency(sanitize.CleanText(v, 40)) {
	case PartUrgencyRequired:
		return PartUrgencyRequired
	case PartUrgencyUpgrade:
		return PartUrgencyUpgrade
	default:
		return PartUrgencyOptional
	}
}

// ProbableCause is one candidate explanation for the reported symptoms.
type ProbableCause struct {
	Title       string     `json:"title"`
	Likelihood  Likelihood `json:"likelihood"`
	Explanation string     `json:"explanation"`
}

// PartNeeded is one part or assembly the diagnosis calls for.
type PartNeeded struct {
	PartName         string       `json:"partName"`
	OEMOrAftermarket PartSourcing `json:"oemOrAftermarket"`
	Urgency          PartUrgency  `json:"urgency"`
	Notes            string       `json:"notes"`
}

// DiagnosisResult is the canonical diagnosis record shape. It is produced
// exactly once per intake job, at creation, and may then be edited
// field-by-field.
type DiagnosisResult struct {
	MostLikelyIssue         string          `json:"mostLikelyIssue"`
	ConfidenceLevel         float64         `json:"confidenceLevel"`
	ProbableCauses          []ProbableCause `json:"probableCauses"`
	PartsNeeded             []PartNeeded    `json:"partsNeeded"`
	EstimatedLaborHours     float64         `json:"estimatedLaborHours"`
	AdditionalMechanicNotes string          `json:"additionalMechanicNotes"`
	EstimatedPickupDate     string          `json:"estimatedPickupDate"`
}

// ParseDiagnosis converts raw generation output into a canonical
// DiagnosisResult. The text is untrusted: every field is independently
// sanitized and defaulted, and no field is assumed present. A non-JSON
// payload returns ErrUnparseableDiagnosis.
//
// AdditionalMechanicNotes is always reset to empty here: the mechanic must
// author it explicitly through an edit.
func ParseDiagnosis(raw string) (*DiagnosisResult, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, ErrUnparseableDiagnosis
	}

	out := DiagnosisResult{
		MostLikelyIssue:         sanitize.CleanText(jsonString(parsed["mostLikelyIssue"]), 200),
		ConfidenceLevel:         sanitize.ClampNumber(jsonNumber(parsed["confidenceLevel"]), 0, MaxConfidence, 0),
		ProbableCauses:          sanitizeCauses(jsonSlice(parsed["probableCauses"])),
		PartsNeeded:             sanitizeRawParts(jsonSlice(parsed["partsNeeded"])),
		EstimatedLaborHours:     sanitize.ClampNumber(jsonNumber(parsed["estimatedLaborHours"]), 0, MaxLaborHours, 0),
		AdditionalMechanicNotes: "",
		EstimatedPickupDate:     sanitizePickupDate(jsonString(parsed["estimatedPickupDate"])),
	}
	return &out, nil
}

// Sanitized returns a canonicalized copy of the result. Sanitizing twice is
// idempotent: the second pass produces identical output.
func (d DiagnosisResult) Sanitized() DiagnosisResult {
	out := DiagnosisResult{
		MostLikelyIssue:         sanitize.CleanText(d.MostLikelyIssue, 200),
		ConfidenceLevel:         sanitize.ClampNumber(d.ConfidenceLevel, 0, MaxConfidence, 0),
		EstimatedLaborHours:     sanitize.ClampNumber(d.EstimatedLaborHours, 0, MaxLaborHours, 0),
		AdditionalMechanicNotes: sanitize.CleanText(d.AdditionalMechanicNotes, 8000),
		EstimatedPickupDate:     sanitizePickupDate(d.EstimatedPickupDate),
	}
	// Causes cap first, then drop untitled entries: a blank title inside the
	// first 12 shrinks the list rather than pulling a later entry in.
	causes := d.ProbableCauses
	if len(causes) > MaxProbableCauses {
		causes = causes[:MaxProbableCauses]
	}
	out.ProbableCauses = make([]ProbableCause, 0, len(causes))
	for _, c := range causes {
		title := sanitize.CleanText(c.Title, 120)
		if title == "" {
			continue
		}
		out.ProbableCauses = append(out.ProbableCauses, ProbableCause{
			Title:       title,
			Likelihood:  coerceLikelihood(string(c.Likelihood)),
			Explanation: sanitize.CleanText(c.Explanation, 800),
		})
	}
	out.PartsNeeded = SanitizeParts(d.PartsNeeded)
	return out
}

// SanitizeParts canonicalizes a parts list: entries without a part name are
// dropped, enums are coerced to their allowed sets, and the list is truncated
// to MaxPartsNeeded.
func SanitizeParts(parts []PartNeeded) []PartNeeded {
	out := make([]PartNeeded, 0, len(parts))
	for _, p := range parts {
		if len(out) == MaxPartsNeeded {
			break
		}
		name := sanitize.CleanText(p.PartName, 120)
		if name == "" {
			continue
		}
		out = append(out, PartNeeded{
			PartName:         name,
			OEMOrAftermarket: coerceSourcing(string(p.OEMOrAftermarket)),
			Urgency:          coerceUrgency(string(p.Urgency)),
			Notes:            sanitize.CleanText(p.Notes, 300),
		})
	}
	return out
}

// sanitizeCauses caps the list at MaxProbableCauses before dropping entries
// without a title, so entries past the cap never surface.
func sanitizeCauses(items []any) []ProbableCause {
	if len(items) > MaxProbableCauses {
		items = items[:MaxProbableCauses]
	}
	out := make([]ProbableCause, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := sanitize.CleanText(jsonString(obj["title"]), 120)
		if title == "" {
			continue
		}
		out = append(out, ProbableCause{
			Title:       title,
			Likelihood:  coerceLikelihood(jsonString(obj["likelihood"])),
			Explanation: sanitize.CleanText(jsonString(obj["explanation"]), 800),
		})
	}
	return out
}

func sanitizeRawParts(items []any) []PartNeeded {
	parts := make([]PartNeeded, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		parts = append(parts, PartNeeded{
			PartName:         jsonString(obj["partName"]),
			OEMOrAftermarket: PartSourcing(jsonString(obj["oemOrAftermarket"])),
			Urgency:          PartUrgency(jsonString(obj["urgency"])),
			Notes:            jsonString(obj["notes"]),
		})
	}
	return SanitizeParts(parts)
}

func sanitizePickupDate(v string) string {
	d := sanitize.CleanText(v, 10)
	if d != "" && sanitize.IsISODate(d) {
		return d
	}
	return ""
}

// jsonString coerces an untyped JSON value to a string; non-strings yield "".
func jsonString(v any) string {
	s, _ := v.(string)
	return s
}

// jsonNumber coerces an untyped JSON value to a float; non-numbers yield NaN
// so ClampNumber applies the fallback.
func jsonNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			break
		}
		return f
	}
	return math.NaN()
}

func jsonSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

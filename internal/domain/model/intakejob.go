package model

import (
	"fmt"
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

// IntakeStatus is the lifecycle state of an intake job.
type IntakeStatus string

const (
	IntakeStatusInProgress IntakeStatus = "in_progress"
	IntakeStatusCompleted  IntakeStatus = "completed"
	IntakeStatusCancelled  IntakeStatus = "cancelled"
)

// Valid reports whether the status is one of the supported values.
func (s IntakeStatus) Valid() bool {
	switch s {
	case IntakeStatusInProgress, IntakeStatusCompleted, IntakeStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status permits no further transitions.
func (s IntakeStatus) Terminal() bool {
	return s == IntakeStatusCompleted || s == IntakeStatusCancelled
}

// ValidateIntakeTransition checks a requested status change. A transition to
// the current status is a no-op and always allowed. Terminal states reject
// every other target.
func ValidateIntakeTransition(current, next IntakeStatus) error {
	if current == next {
		return nil
	}
	if current.Terminal() {
		return fmt.Errorf("status is final (%s) and cannot be changed", current)
	}
	if current == IntakeStatusInProgress && next.Terminal() {
		return nil
	}
	return fmt.Errorf("invalid status transition %s -> %s", current, next)
}

// Preference whitelists. Unknown values fall back silently so stale clients
// keep working.
var (
	detailLevels = map[string]bool{"Detailed": true, "Normal": true, "Brief": true}
	tones        = map[string]bool{"More Technical": true, "Balanced": true, "More Friendly": true}
	topLanguages = map[string]bool{
		"English":          true,
		"Mandarin Chinese": true,
		"Hindi":            true,
		"Spanish":          true,
		"French":           true,
		"Arabic":           true,
		"Bengali":          true,
		"Portuguese":       true,
		"Russian":          true,
		"Urdu":             true,
	}
)

const (
	DefaultDetailLevel = "Detailed"
	DefaultLanguage    = "English"
	DefaultTone        = "More Technical"
)

// Preferences steer how the diagnosis report is written.
type Preferences struct {
	DetailLevel string `json:"detail_level"`
	Language    string `json:"language"`
	Tone        string `json:"tone"`
}

// Sanitize replaces unknown or empty values with the defaults.
func (p *Preferences) Sanitize() {
	if d := sanitize.CleanText(p.DetailLevel, 40); detailLevels[d] {
		p.DetailLevel = d
	} else {
		p.DetailLevel = DefaultDetailLevel
	}
	if l := sanitize.CleanText(p.Language, 60); topLanguages[l] {
		p.Language = l
	} else {
		p.Language = DefaultLanguage
	}
	if t := sanitize.CleanText(p.Tone, 60); tones[t] {
		p.Tone = t
	} else {
		p.Tone = DefaultTone
	}
}

// DiagnosticInput is the untrusted symptom block of an intake payload.
type DiagnosticInput struct {
	OBD2Data string   `json:"obd2_data"`
	Symptoms string   `json:"symptoms"`
	Media    []string `json:"media"`
}

// Sanitize normalizes the diagnostic block in place. Media entries are
// trimmed, empties dropped, and the list capped.
func (d *DiagnosticInput) Sanitize() {
	d.OBD2Data = sanitize.CleanText(d.OBD2Data, 12000)
	d.Symptoms = sanitize.CleanText(d.Symptoms, 12000)
	media := make([]string, 0, len(d.Media))
	for _, m := range d.Media {
		if len(media) == MaxMediaURLs {
			break
		}
		if u := sanitize.CleanText(m, 600); u != "" {
			media = append(media, u)
		}
	}
	d.Media = media
}

// Validate appends field-level problems to details and returns the result.
// Any unsafe media URL fails the whole request.
func (d *DiagnosticInput) Validate(details []string) []string {
	if d.Symptoms == "" {
		details = append(details, "diagnostic.symptoms is required.")
	} else if len([]rune(d.Symptoms)) < 6 {
		details = append(details, "diagnostic.symptoms must be at least 6 characters.")
	}
	for _, u := range d.Media {
		if !sanitize.IsSafeURL(u) {
			details = append(details, "diagnostic.media contains an invalid URL.")
		}
	}
	return details
}

// IntakeJob is one repair intake: customer, vehicle, reported symptoms, and
// the AI diagnosis produced at creation time. Customer and vehicle snapshots
// are frozen copies taken at creation so later customer edits do not rewrite
// job history.
type IntakeJob struct {
	ID               string          `json:"id"                db:"id"`
	OwnerActorID     string          `json:"owner_actor_id"    db:"owner_actor_id"`
	CustomerID       string          `json:"customer_id"       db:"customer_id"`
	VehicleID        string          `json:"vehicle_id"        db:"vehicle_id"`
	CustomerSnapshot Customer        `json:"customer_snapshot" db:"customer_snapshot"`
	VehicleSnapshot  Vehicle         `json:"vehicle_snapshot"  db:"vehicle_snapshot"`
	OBD2Data         string          `json:"obd2_data"         db:"obd2_data"`
	Symptoms         string          `json:"symptoms"          db:"symptoms"`
	Media            []string        `json:"media"             db:"media"`
	Preferences      Preferences     `json:"preferences"       db:"preferences"`
	Diagnosis        DiagnosisResult `json:"diagnosis"         db:"diagnosis"`
	RawAIText        string          `json:"-"                 db:"raw_ai_text"`
	AIModelID        string          `json:"ai_model_id"       db:"ai_model_id"`
	GeneratedOn      time.Time       `json:"generated_on"      db:"generated_on"`
	Status           IntakeStatus    `json:"status"            db:"status"`
	CancelNotes      string          `json:"cancel_notes"      db:"cancel_notes"`
	CreatedAt        time.Time       `json:"created_at"        db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"        db:"updated_at"`
}

// IntakeJobSummary is the trimmed listing shape used by customer lookups.
type IntakeJobSummary struct {
	ID              string       `json:"id"                db:"id"`
	Status          IntakeStatus `json:"status"            db:"status"`
	MostLikelyIssue string       `json:"most_likely_issue" db:"most_likely_issue"`
	ConfidenceLevel float64      `json:"confidence_level"  db:"confidence_level"`
	VehicleID       string       `json:"vehicle_id"        db:"vehicle_id"`
	CancelNotes     string       `json:"cancel_notes"      db:"cancel_notes"`
	CreatedAt       time.Time    `json:"created_at"        db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"        db:"updated_at"`
}

// CreateIntakeRequest is the full untrusted intake payload.
type CreateIntakeRequest struct {
	Customer    CustomerInput   `json:"customer"`
	Vehicle     VehicleInput    `json:"vehicle"`
	Diagnostic  DiagnosticInput `json:"diagnostic"`
	Preferences Preferences     `json:"preferences"`
}

// Sanitize normalizes every block in place.
func (r *CreateIntakeRequest) Sanitize() {
	r.Customer.Sanitize()
	r.Vehicle.Sanitize()
	r.Diagnostic.Sanitize()
	r.Preferences.Sanitize()
}

// Validate collects every field problem across all blocks. Call Sanitize
// first. An empty slice means the payload is acceptable.
func (r *CreateIntakeRequest) Validate(now time.Time) []string {
	var details []string
	details = r.Customer.Validate(details)
	details = r.Vehicle.Validate(now, details)
	details = r.Diagnostic.Validate(details)
	return details
}

// PatchIntakeRequest combines the three independent edit surfaces of a job:
// status transitions, diagnosis field edits, and media list replacement. Nil
// sections are left untouched.
type PatchIntakeRequest struct {
	Status      *string                `json:"status"`
	CancelNotes string                 `json:"cancel_notes"`
	Diagnosis   *PatchDiagnosisRequest `json:"diagnosis"`
	Media       *[]string              `json:"media"`
}

// SanitizedMedia validates and canonicalizes the replacement media list.
// Any unsafe URL rejects the entire list; there is no partial apply.
func (r *PatchIntakeRequest) SanitizedMedia() ([]string, error) {
	if r.Media == nil {
		return nil, nil
	}
	list := make([]string, 0, len(*r.Media))
	for _, m := range *r.Media {
		u := sanitize.CleanText(m, 600)
		if u == "" {
			continue
		}
		if !sanitize.IsSafeURL(u) {
			return nil, fmt.Errorf("media contains an invalid URL")
		}
		list = append(list, u)
	}
	if len(list) > MaxMediaURLs {
		list = list[:MaxMediaURLs]
	}
	return list, nil
}

// PatchDiagnosisRequest edits stored diagnosis fields. Nil pointers leave the
// corresponding field untouched. Probable causes are not editable; they are
// fixed at generation time.
type PatchDiagnosisRequest struct {
	MostLikelyIssue         *string       `json:"most_likely_issue"`
	ConfidenceLevel         *float64      `json:"confidence_level"`
	PartsNeeded             *[]PartNeeded `json:"parts_needed"`
	EstimatedLaborHours     *float64      `json:"estimated_labor_hours"`
	AdditionalMechanicNotes *string       `json:"additional_mechanic_notes"`
	EstimatedPickupDate     *string       `json:"estimated_pickup_date"`
}

// Apply merges the patch into d and canonicalizes the result.
func (r *PatchDiagnosisRequest) Apply(d DiagnosisResult) DiagnosisResult {
	if r.MostLikelyIssue != nil {
		d.MostLikelyIssue = *r.MostLikelyIssue
	}
	if r.ConfidenceLevel != nil {
		d.ConfidenceLevel = *r.ConfidenceLevel
	}
	if r.PartsNeeded != nil {
		d.PartsNeeded = *r.PartsNeeded
	}
	if r.EstimatedLaborHours != nil {
		d.EstimatedLaborHours = *r.EstimatedLaborHours
	}
	if r.AdditionalMechanicNotes != nil {
		d.AdditionalMechanicNotes = *r.AdditionalMechanicNotes
	}
	if r.EstimatedPickupDate != nil {
		d.EstimatedPickupDate = *r.EstimatedPickupDate
	}
	return d.Sanitized()
}

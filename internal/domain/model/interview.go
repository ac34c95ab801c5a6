package model

import (
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

// InterviewStatus is the lifecycle state of an interview.
type InterviewStatus string

const (
	InterviewStatusProposed    InterviewStatus = "proposed"
	InterviewStatusConfirmed   InterviewStatus = "confirmed"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
)

// Valid reports whether the status is one of the supported values.
func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewStatusProposed, InterviewStatusConfirmed, InterviewStatusRescheduled,
		InterviewStatusCompleted, InterviewStatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether the interview permits no further edits.
func (s InterviewStatus) Terminal() bool {
	return s == InterviewStatusCompleted || s == InterviewStatusCancelled
}

// InterviewMode is how the interview is held.
type InterviewMode string

const (
	InterviewModeInPerson InterviewMode = "in_person"
	InterviewModeVideo    InterviewMode = "video"
	InterviewModePhone    InterviewMode = "phone"
)

func (m InterviewMode) Valid() bool {
	switch m {
	case InterviewModeInPerson, InterviewModeVideo, InterviewModePhone:
		return true
	default:
		return false
	}
}

// Interview is the single interview attached to an application.
type Interview struct {
	ID               string          `json:"id"                 db:"id"`
	ApplicationID    string          `json:"application_id"     db:"application_id"`
	ScheduledStart   time.Time       `json:"scheduled_start"    db:"scheduled_start"`
	ScheduledEnd     time.Time       `json:"scheduled_end"      db:"scheduled_end"`
	Mode             InterviewMode   `json:"mode"               db:"mode"`
	MeetingLink      string          `json:"meeting_link"       db:"meeting_link"`
	LocationText     string          `json:"location_text"      db:"location_text"`
	Status           InterviewStatus `json:"status"             db:"status"`
	CancelReason     string          `json:"cancel_reason"      db:"cancel_reason"`
	CreatedByActorID string          `json:"created_by_actor_id" db:"created_by_actor_id"`
	CreatedAt        time.Time       `json:"created_at"         db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"         db:"updated_at"`
}

// MeetingDurationMinutes derives the provider meeting length from the
// scheduled window, with a 15 minute floor.
func MeetingDurationMinutes(start, end time.Time) int {
	mins := int(end.Sub(start).Minutes())
	if mins < 15 {
		return 15
	}
	return mins
}

// CreateInterviewRequest is the untrusted scheduling payload.
type CreateInterviewRequest struct {
	ScheduledStart time.Time `json:"scheduled_start"`
	ScheduledEnd   time.Time `json:"scheduled_end"`
	Mode           string    `json:"mode"`
	MeetingLink    string    `json:"meeting_link"`
	LocationText   string    `json:"location_text"`
}

// Sanitize normalizes the payload in place.
func (r *CreateInterviewRequest) Sanitize() {
	r.Mode = sanitize.CleanText(r.Mode, 40)
	r.MeetingLink = sanitize.CleanText(r.MeetingLink, 600)
	r.LocationText = sanitize.CleanText(r.LocationText, 600)
}

// Validate collects field problems. Mode constraints that depend on meeting
// provisioning (video without a link) are checked by the service, not here.
func (r *CreateInterviewRequest) Validate() []string {
	var details []string
	if !InterviewMode(r.Mode).Valid() {
		details = append(details, "mode is invalid.")
	}
	if r.ScheduledStart.IsZero() || r.ScheduledEnd.IsZero() {
		details = append(details, "scheduled_start and scheduled_end are required.")
	} else if !r.ScheduledEnd.After(r.ScheduledStart) {
		details = append(details, "scheduled_end must be after scheduled_start.")
	}
	if InterviewMode(r.Mode) == InterviewModeInPerson && r.LocationText == "" {
		details = append(details, "location_text required for in_person mode.")
	}
	return details
}

// UpdateInterviewRequest edits an interview. Nil pointers leave the
// corresponding field untouched. Changing the schedule while the interview is
// neither confirmed nor completed moves it to rescheduled.
type UpdateInterviewRequest struct {
	ScheduledStart *time.Time `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
	Mode           *string    `json:"mode"`
	MeetingLink    *string    `json:"meeting_link"`
	LocationText   *string    `json:"location_text"`
	Status         *string    `json:"status"`
}

// ScheduleChanged reports whether the patch touches the time window.
func (r *UpdateInterviewRequest) ScheduleChanged() bool {
	return r.ScheduledStart != nil || r.ScheduledEnd != nil
}

// CancelInterviewRequest cancels an interview with an optional reason.
type CancelInterviewRequest struct {
	CancelReason string `json:"cancel_reason"`
}

// Sanitize normalizes the payload in place.
func (r *CancelInterviewRequest) Sanitize() {
	r.CancelReason = sanitize.CleanText(r.CancelReason, 2000)
}

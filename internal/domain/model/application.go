package model

import (
	"fmt"
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

// ApplicationStatus is the lifecycle state of a job application.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusWithdrawn   ApplicationStatus = "withdrawn"
)

// Valid reports whether the status is one of the supported values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusShortlisted, ApplicationStatusRejected,
		ApplicationStatusInterview, ApplicationStatusHired, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// Terminal reports whether the status permits no further owner transitions.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case ApplicationStatusRejected, ApplicationStatusHired, ApplicationStatusWithdrawn:
		return true
	default:
		return false
	}
}

// Closed reports whether the application can no longer host an interview.
func (s ApplicationStatus) Closed() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

// ownerTransitions is the transition table for the posting owner. Terminal
// states allow nothing.
var ownerTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusSubmitted:   {ApplicationStatusShortlisted, ApplicationStatusRejected, ApplicationStatusInterview},
	ApplicationStatusShortlisted: {ApplicationStatusInterview, ApplicationStatusRejected},
	ApplicationStatusInterview:   {ApplicationStatusHired, ApplicationStatusRejected},
}

// OwnerTransitionAllowed reports whether the posting owner may move an
// application from one status to another.
func OwnerTransitionAllowed(from, to ApplicationStatus) bool {
	for _, allowed := range ownerTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Application transition failures, distinguished so the transport layer can
// map them to conflict versus validation responses.
var (
	ErrStatusAfterHired    = fmt.Errorf("cannot change status after hired")
	ErrWithdrawAfterFinal  = fmt.Errorf("cannot withdraw after final decision")
	ErrApplicantNotAllowed = fmt.Errorf("applicant can only withdraw")
)

// ValidateApplicationTransition checks whether the actor may move the
// application between the two statuses. isApplicant marks the applicant
// themselves; isOwner marks the posting owner. Admins bypass the owner
// transition table but are still blocked once an application reaches hired.
func ValidateApplicationTransition(actor Actor, isApplicant, isOwner bool, from, to ApplicationStatus) error {
	if from == ApplicationStatusHired {
		return ErrStatusAfterHired
	}
	if actor.IsAdmin() {
		return nil
	}
	if isApplicant && !isOwner {
		if to != ApplicationStatusWithdrawn {
			return ErrApplicantNotAllowed
		}
		if from == ApplicationStatusRejected {
			return ErrWithdrawAfterFinal
		}
		return nil
	}
	if !OwnerTransitionAllowed(from, to) {
		return fmt.Errorf("cannot change from %s to %s", from, to)
	}
	return nil
}

// JobApplication is one candidate's submission against a posting. One
// application per (job, applicant).
type JobApplication struct {
	ID               string            `json:"id"                 db:"id"`
	JobID            string            `json:"job_id"             db:"job_id"`
	ApplicantActorID string            `json:"applicant_actor_id" db:"applicant_actor_id"`
	Status           ApplicationStatus `json:"status"             db:"status"`
	CoverLetter      string            `json:"cover_letter"       db:"cover_letter"`
	SubmittedAt      time.Time         `json:"submitted_at"       db:"submitted_at"`
	CreatedAt        time.Time         `json:"created_at"         db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"         db:"updated_at"`
}

// StatusHistory is one append-only audit row recording a transition. The
// initial submission is recorded with an empty FromStatus.
type StatusHistory struct {
	ID             string            `json:"id"               db:"id"`
	ApplicationID  string            `json:"application_id"   db:"application_id"`
	FromStatus     ApplicationStatus `json:"from_status"      db:"from_status"`
	ToStatus       ApplicationStatus `json:"to_status"        db:"to_status"`
	ChangedByActor string            `json:"changed_by_actor" db:"changed_by_actor"`
	Note           string            `json:"note"             db:"note"`
	CreatedAt      time.Time         `json:"created_at"       db:"created_at"`
}

// InitialSubmissionNote is written to the first history row of every
// application.
const InitialSubmissionNote = "Initial submission"

// ApplyRequest is the untrusted application payload.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// Sanitize normalizes the payload in place.
func (r *ApplyRequest) Sanitize() {
	r.CoverLetter = sanitize.CleanText(r.CoverLetter, 20000)
}

// UpdateApplicationStatusRequest moves an application between statuses.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// Sanitize normalizes the payload in place.
func (r *UpdateApplicationStatusRequest) Sanitize() {
	r.Status = sanitize.CleanText(r.Status, 40)
	r.Note = sanitize.CleanText(r.Note, 2000)
}

// ApplicationScope selects which side of the board a listing shows.
type ApplicationScope string

const (
	ScopeMine  ApplicationScope = "mine"  // applicant's own applications
	ScopeOwned ApplicationScope = "owned" // applications against postings the actor owns
)

// ApplicationListOptions filters application listings.
type ApplicationListOptions struct {
	Scope  ApplicationScope
	Status ApplicationStatus
}

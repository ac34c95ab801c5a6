package model

import (
	"time"

	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
)

// PostingStatus is the lifecycle state of a job posting.
type PostingStatus string

const (
	PostingStatusDraft     PostingStatus = "draft"
	PostingStatusPublished PostingStatus = "published"
	PostingStatusArchived  PostingStatus = "archived"
)

// Valid reports whether the status is one of the supported values.
func (s PostingStatus) Valid() bool {
	switch s {
	case PostingStatusDraft, PostingStatusPublished, PostingStatusArchived:
		return true
	default:
		return false
	}
}

// EmploymentType classifies the engagement offered by a posting.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentTemporary  EmploymentType = "temporary"
	EmploymentInternship EmploymentType = "internship"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentTemporary, EmploymentInternship:
		return true
	default:
		return false
	}
}

// WorkMode says where the work happens.
type WorkMode string

const (
	WorkModeOnSite WorkMode = "on_site"
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
)

func (w WorkMode) Valid() bool {
	switch w {
	case WorkModeOnSite, WorkModeRemote, WorkModeHybrid:
		return true
	default:
		return false
	}
}

// JobPosting is a position an employer or agency hires for. The owner role is
// stored alongside the owner id; both must match for ownership checks.
type JobPosting struct {
	ID             string         `json:"id"              db:"id"`
	OwnerType      Role           `json:"owner_type"      db:"owner_type"`
	OwnerActorID   string         `json:"owner_actor_id"  db:"owner_actor_id"`
	Title          string         `json:"title"           db:"title"`
	Description    string         `json:"description"     db:"description"`
	EmploymentType EmploymentType `json:"employment_type" db:"employment_type"`
	WorkMode       WorkMode       `json:"work_mode"       db:"work_mode"`
	City           string         `json:"city"            db:"city"`
	Status         PostingStatus  `json:"status"          db:"status"`
	PublishedAt    *time.Time     `json:"published_at"    db:"published_at"`
	ArchivedAt     *time.Time     `json:"archived_at"     db:"archived_at"`
	CreatedAt      time.Time      `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"      db:"updated_at"`
}

// OwnedBy reports whether the actor is the posting's owner. Both the id and
// the owner role tag must match.
func (j JobPosting) OwnedBy(actor Actor) bool {
	return j.OwnerActorID == actor.ID && j.OwnerType == actor.Role
}

// CreatePostingRequest is the untrusted posting payload. All postings start
// as drafts.
type CreatePostingRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	EmploymentType string `json:"employment_type"`
	WorkMode       string `json:"work_mode"`
	City           string `json:"city"`
}

// Sanitize normalizes the payload in place.
func (r *CreatePostingRequest) Sanitize() {
	r.Title = sanitize.CleanText(r.Title, 200)
	r.Description = sanitize.CleanText(r.Description, 20000)
	r.EmploymentType = sanitize.CleanText(r.EmploymentType, 40)
	r.WorkMode = sanitize.CleanText(r.WorkMode, 40)
	r.City = sanitize.CleanText(r.City, 120)
}

// Validate collects field problems. Call Sanitize first.
func (r *CreatePostingRequest) Validate() []string {
	var details []string
	if len([]rune(r.Title)) < 3 {
		details = append(details, "title is required (min 3 chars).")
	}
	if r.Description == "" {
		details = append(details, "description is required.")
	}
	if !EmploymentType(r.EmploymentType).Valid() {
		details = append(details, "employment_type is invalid.")
	}
	if !WorkMode(r.WorkMode).Valid() {
		details = append(details, "work_mode is invalid.")
	}
	return details
}

// UpdatePostingRequest edits posting fields. Nil pointers leave the
// corresponding field untouched. Status is not editable here; publish and
// archive are separate operations.
type UpdatePostingRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	EmploymentType *string `json:"employment_type"`
	WorkMode       *string `json:"work_mode"`
	City           *string `json:"city"`
}

// Apply merges the patch into j and collects field problems.
func (r *UpdatePostingRequest) Apply(j *JobPosting) []string {
	var details []string
	if r.Title != nil {
		t := sanitize.CleanText(*r.Title, 200)
		if len([]rune(t)) < 3 {
			details = append(details, "title is required (min 3 chars).")
		} else {
			j.Title = t
		}
	}
	if r.Description != nil {
		d := sanitize.CleanText(*r.Description, 20000)
		if d == "" {
			details = append(details, "description is required.")
		} else {
			j.Description = d
		}
	}
	if r.EmploymentType != nil {
		e := EmploymentType(sanitize.CleanText(*r.EmploymentType, 40))
		if !e.Valid() {
			details = append(details, "employment_type is invalid.")
		} else {
			j.EmploymentType = e
		}
	}
	if r.WorkMode != nil {
		w := WorkMode(sanitize.CleanText(*r.WorkMode, 40))
		if !w.Valid() {
			details = append(details, "work_mode is invalid.")
		} else {
			j.WorkMode = w
		}
	}
	if r.City != nil {
		j.City = sanitize.CleanText(*r.City, 120)
	}
	return details
}

// PostingListOptions filters posting listings.
type PostingListOptions struct {
	Status         PostingStatus
	Search         string
	EmploymentType EmploymentType
	WorkMode       WorkMode
	City           string
	PublishedOnly  bool
}

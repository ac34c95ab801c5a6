// Package authz resolves whether an actor may read or mutate an entity.
// Every service entry point consults these predicates before touching state,
// so a forbidden actor never causes a partial side effect.
package authz

import "github.com/fixhire/fixhire-api/internal/domain/model"

// Relation captures how an actor stands to an application and its posting.
type Relation struct {
	IsApplicant bool
	IsOwner     bool
}

// Forbidden reports whether the actor has no standing at all.
func (r Relation) Forbidden(actor model.Actor) bool {
	return !actor.IsAdmin() && !r.IsApplicant && !r.IsOwner
}

// Relate derives the actor's relation to an application.
func Relate(actor model.Actor, app model.JobApplication, job model.JobPosting) Relation {
	return Relation{
		IsApplicant: app.ApplicantActorID == actor.ID,
		IsOwner:     actor.Role.IsOwnerRole() && job.OwnedBy(actor),
	}
}

// CanAccessOwned gates tenant-isolated resources on the intake side.
// Customers, vehicles, and intake jobs belong exclusively to their creator.
func CanAccessOwned(actor model.Actor, ownerActorID string) bool {
	return actor.IsAdmin() || actor.ID == ownerActorID
}

// CanManagePosting gates posting mutation and unpublished reads. Ownership
// requires both the actor id and the owner role tag to match.
func CanManagePosting(actor model.Actor, job model.JobPosting) bool {
	return actor.IsAdmin() || (actor.Role.IsOwnerRole() && job.OwnedBy(actor))
}

// CanReadPosting additionally lets anyone see a published posting.
func CanReadPosting(actor model.Actor, job model.JobPosting) bool {
	if job.Status == model.PostingStatusPublished {
		return true
	}
	return CanManagePosting(actor, job)
}

// CanApply reports whether the actor may submit an application to the
// posting. Owners cannot apply to their own postings.
func CanApply(actor model.Actor, job model.JobPosting) bool {
	if job.OwnedBy(actor) {
		return false
	}
	return actor.Role == model.RoleApplicant || actor.IsAdmin()
}

// CanScheduleInterview reports whether the actor may create or edit the
// interview attached to an application. Only the posting owner or an admin.
func CanScheduleInterview(actor model.Actor, rel Relation) bool {
	return actor.IsAdmin() || rel.IsOwner
}

// CanCancelInterview is wider than scheduling: the applicant may also cancel
// their own interview.
func CanCancelInterview(actor model.Actor, rel Relation) bool {
	return actor.IsAdmin() || rel.IsOwner || rel.IsApplicant
}

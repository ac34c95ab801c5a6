package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/authz"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	ApplicationRepo core.ApplicationRepository
	PostingRepo     core.PostingRepository
	InterviewRepo   core.InterviewRepository
}

// ApplicationService orchestrates candidate applications: submission, the
// status state machine with its audit trail, and scoped listings.
type ApplicationService struct {
	apps       core.ApplicationRepository
	postings   core.PostingRepository
	interviews core.InterviewRepository
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	return &ApplicationService{
		apps:       opts.ApplicationRepo,
		postings:   opts.PostingRepo,
		interviews: opts.InterviewRepo,
	}
}

// Apply submits an application to a published posting. The application row
// and the "Initial submission" history row commit atomically.
func (s *ApplicationService) Apply(ctx context.Context, actor model.Actor, jobID string, req *model.ApplyRequest) (*model.JobApplication, error) {
	job, err := s.postings.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, data.ErrPostingNotFound) {
			return nil, apperrors.NotFound("Job posting not found.")
		}
		return nil, err
	}
	if job.OwnedBy(actor) {
		return nil, apperrors.Forbidden("You cannot apply to your own job posting.")
	}
	if !authz.CanApply(actor, *job) {
		return nil, apperrors.Forbidden("Only applicant accounts can apply.")
	}
	if job.Status != model.PostingStatusPublished {
		return nil, apperrors.Validation("Job is not open for applications.")
	}

	req.Sanitize()
	app, err := s.apps.CreateWithHistory(ctx,
		&model.JobApplication{
			JobID:            jobID,
			ApplicantActorID: actor.ID,
			CoverLetter:      req.CoverLetter,
		},
		&model.StatusHistory{
			ToStatus:       model.ApplicationStatusSubmitted,
			ChangedByActor: actor.ID,
			Note:           model.InitialSubmissionNote,
		},
	)
	if err != nil {
		if errors.Is(err, data.ErrDuplicateApplication) {
			return nil, apperrors.Conflict("You have already applied to this job.")
		}
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) load(ctx context.Context, id string) (*model.JobApplication, *model.JobPosting, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrApplicationNotFound) {
			return nil, nil, apperrors.NotFound("Application not found.")
		}
		return nil, nil, err
	}
	job, err := s.postings.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, fmt.Errorf("load posting for application: %w", err)
	}
	return app, job, nil
}

// UpdateStatus moves an application through the state machine. The status
// write re-checks the prior status inside the transaction, so a concurrent
// transition loses cleanly instead of slipping through.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor model.Actor, id string, req *model.UpdateApplicationStatusRequest) (*model.JobApplication, error) {
	req.Sanitize()
	next := model.ApplicationStatus(req.Status)
	if !next.Valid() {
		return nil, apperrors.Validation("Invalid status.")
	}

	app, job, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	rel := authz.Relate(actor, *app, *job)
	if rel.Forbidden(actor) {
		return nil, apperrors.Forbidden("You have no access to this application.")
	}

	if transErr := model.ValidateApplicationTransition(actor, rel.IsApplicant, rel.IsOwner, app.Status, next); transErr != nil {
		switch {
		case errors.Is(transErr, model.ErrStatusAfterHired), errors.Is(transErr, model.ErrWithdrawAfterFinal):
			return nil, apperrors.Conflict(transErr.Error())
		default:
			return nil, apperrors.Validation(transErr.Error())
		}
	}

	from := app.Status
	app.Status = next
	updated, err := s.apps.UpdateStatusWithHistory(ctx, app, &model.StatusHistory{
		ApplicationID:  app.ID,
		FromStatus:     from,
		ToStatus:       next,
		ChangedByActor: actor.ID,
		Note:           req.Note,
	})
	if err != nil {
		if errors.Is(err, data.ErrApplicationNotFound) {
			// The status moved underneath us between load and write.
			return nil, apperrors.Conflict("Application status changed concurrently; reload and retry.")
		}
		return nil, err
	}
	return updated, nil
}

// ApplicationDetail is an application with its audit trail and interview.
type ApplicationDetail struct {
	Application *model.JobApplication  `json:"application"`
	History     []*model.StatusHistory `json:"history"`
	Interview   *model.Interview       `json:"interview,omitempty"`
}

// Get retrieves one application with history and interview, visible to the
// applicant, the posting owner, and admins.
func (s *ApplicationService) Get(ctx context.Context, actor model.Actor, id string) (*ApplicationDetail, error) {
	app, job, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	rel := authz.Relate(actor, *app, *job)
	if rel.Forbidden(actor) {
		return nil, apperrors.Forbidden("You have no access to this application.")
	}

	history, err := s.apps.ListHistory(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	detail := &ApplicationDetail{Application: app, History: history}
	iv, err := s.interviews.GetByApplication(ctx, app.ID)
	switch {
	case err == nil:
		detail.Interview = iv
	case errors.Is(err, data.ErrInterviewNotFound):
		// No interview scheduled yet.
	default:
		return nil, fmt.Errorf("load interview: %w", err)
	}
	return detail, nil
}

// List returns applications in the requested scope: the actor's own
// submissions (mine) or applications against their postings (owned).
func (s *ApplicationService) List(ctx context.Context, actor model.Actor, opts model.ApplicationListOptions, limit, offset int) ([]*model.JobApplication, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, apperrors.Validation("Invalid status filter.")
	}

	params := core.ListApplicationsParams{Status: opts.Status, Limit: limit, Offset: offset}
	switch opts.Scope {
	case model.ScopeMine:
		params.ApplicantActorID = actor.ID
	case model.ScopeOwned:
		if actor.IsAdmin() {
			break
		}
		if !actor.Role.IsOwnerRole() {
			return nil, apperrors.Forbidden("Only employer or agency accounts own postings.")
		}
		params.OwnerActorID = actor.ID
		params.OwnerType = actor.Role
	default:
		return nil, apperrors.Validation("scope must be mine or owned.")
	}
	return s.apps.List(ctx, params)
}

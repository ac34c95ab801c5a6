package service

import (
	"context"
	"errors"
	"time"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/authz"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
)

// PostingServiceOptions groups dependencies for PostingService.
type PostingServiceOptions struct {
	PostingRepo core.PostingRepository
	Now         func() time.Time
}

// PostingService orchestrates the job posting lifecycle:
// draft → published → archived.
type PostingService struct {
	postings core.PostingRepository
	now      func() time.Time
}

// NewPostingService constructs a new PostingService.
func NewPostingService(opts PostingServiceOptions) *PostingService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &PostingService{postings: opts.PostingRepo, now: now}
}

// Create drafts a new posting owned by the actor. Only employer and agency
// accounts own postings.
func (s *PostingService) Create(ctx context.Context, actor model.Actor, req *model.CreatePostingRequest) (*model.JobPosting, error) {
	if !actor.Role.IsOwnerRole() {
		return nil, apperrors.Forbidden("Only employer or agency accounts can create postings.")
	}

	req.Sanitize()
	if details := req.Validate(); len(details) > 0 {
		return nil, apperrors.ValidationDetails("Validation failed.", details)
	}

	return s.postings.Create(ctx, &model.JobPosting{
		OwnerType:      actor.Role,
		OwnerActorID:   actor.ID,
		Title:          req.Title,
		Description:    req.Description,
		EmploymentType: model.EmploymentType(req.EmploymentType),
		WorkMode:       model.WorkMode(req.WorkMode),
		City:           req.City,
	})
}

// GetByID retrieves a posting. Unpublished postings are only visible to
// their owner and admins.
func (s *PostingService) GetByID(ctx context.Context, actor model.Actor, id string) (*model.JobPosting, error) {
	job, err := s.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrPostingNotFound) {
			return nil, apperrors.NotFound("Job posting not found.")
		}
		return nil, err
	}
	if !authz.CanReadPosting(actor, *job) {
		return nil, apperrors.NotFound("Job posting not found.")
	}
	return job, nil
}

func (s *PostingService) loadForManage(ctx context.Context, actor model.Actor, id string) (*model.JobPosting, error) {
	job, err := s.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrPostingNotFound) {
			return nil, apperrors.NotFound("Job posting not found.")
		}
		return nil, err
	}
	if !authz.CanManagePosting(actor, *job) {
		return nil, apperrors.Forbidden("You do not own this posting.")
	}
	return job, nil
}

// Update edits posting fields. The lifecycle status moves through Publish
// and Archive, never here.
func (s *PostingService) Update(ctx context.Context, actor model.Actor, id string, req *model.UpdatePostingRequest) (*model.JobPosting, error) {
	job, err := s.loadForManage(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if details := req.Apply(job); len(details) > 0 {
		return nil, apperrors.ValidationDetails("Validation failed.", details)
	}
	return s.postings.Update(ctx, job)
}

// Publish opens the posting to the public board. Republishing an archived
// posting clears its archived timestamp.
func (s *PostingService) Publish(ctx context.Context, actor model.Actor, id string) (*model.JobPosting, error) {
	job, err := s.loadForManage(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	job.Status = model.PostingStatusPublished
	job.PublishedAt = &now
	job.ArchivedAt = nil
	return s.postings.Update(ctx, job)
}

// Archive removes the posting from the public board. Existing applications
// are unaffected.
func (s *PostingService) Archive(ctx context.Context, actor model.Actor, id string) (*model.JobPosting, error) {
	job, err := s.loadForManage(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	job.Status = model.PostingStatusArchived
	job.ArchivedAt = &now
	return s.postings.Update(ctx, job)
}

// Delete removes a posting entirely.
func (s *PostingService) Delete(ctx context.Context, actor model.Actor, id string) error {
	if _, err := s.loadForManage(ctx, actor, id); err != nil {
		return err
	}
	ok, err := s.postings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("Job posting not found.")
	}
	return nil
}

func validateListFilters(opts model.PostingListOptions) error {
	if opts.EmploymentType != "" && !opts.EmploymentType.Valid() {
		return apperrors.Validation("Invalid employment_type filter.")
	}
	if opts.WorkMode != "" && !opts.WorkMode.Valid() {
		return apperrors.Validation("Invalid work_mode filter.")
	}
	return nil
}

// ListPublic returns the public board: published postings only, with the
// optional search and filter options.
func (s *PostingService) ListPublic(ctx context.Context, opts model.PostingListOptions, limit, offset int) ([]*model.JobPosting, error) {
	if err := validateListFilters(opts); err != nil {
		return nil, err
	}
	opts.PublishedOnly = true
	return s.postings.List(ctx, core.ListPostingsParams{Opts: opts, Limit: limit, Offset: offset})
}

// ListOwned returns the actor's own postings in every status. Admins see
// every posting.
func (s *PostingService) ListOwned(ctx context.Context, actor model.Actor, opts model.PostingListOptions, limit, offset int) ([]*model.JobPosting, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, apperrors.Validation("Invalid status filter.")
	}
	if err := validateListFilters(opts); err != nil {
		return nil, err
	}

	params := core.ListPostingsParams{Opts: opts, Limit: limit, Offset: offset}
	if !actor.IsAdmin() {
		if !actor.Role.IsOwnerRole() {
			return nil, apperrors.Forbidden("Only employer or agency accounts own postings.")
		}
		params.OwnerActorID = actor.ID
		params.OwnerType = actor.Role
	}
	return s.postings.List(ctx, params)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/authz"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/domain/sanitize"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/ports"
)

// InterviewServiceOptions groups dependencies for InterviewService.
type InterviewServiceOptions struct {
	InterviewRepo   core.InterviewRepository
	ApplicationRepo core.ApplicationRepository
	PostingRepo     core.PostingRepository
	Meetings        ports.MeetingScheduler
}

// InterviewService orchestrates the single interview attached to an
// application, including video meeting provisioning.
type InterviewService struct {
	interviews core.InterviewRepository
	apps       core.ApplicationRepository
	postings   core.PostingRepository
	meetings   ports.MeetingScheduler
}

// NewInterviewService constructs a new InterviewService.
func NewInterviewService(opts InterviewServiceOptions) *InterviewService {
	return &InterviewService{
		interviews: opts.InterviewRepo,
		apps:       opts.ApplicationRepo,
		postings:   opts.PostingRepo,
		meetings:   opts.Meetings,
	}
}

func (s *InterviewService) loadApplication(ctx context.Context, applicationID string) (*model.JobApplication, *model.JobPosting, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
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

// provisionMeeting creates a video meeting for the interview window. Called
// only when the mode is video and no link was supplied; nothing is persisted
// when provisioning fails.
func (s *InterviewService) provisionMeeting(ctx context.Context, job *model.JobPosting, start, end time.Time) (string, error) {
	if s.meetings == nil || !s.meetings.Enabled() {
		return "", apperrors.Upstream("Video meetings are not configured on this server.")
	}
	meeting, err := s.meetings.CreateMeeting(ctx, ports.MeetingInput{
		Topic: "Interview • " + job.Title,
		Start: start,
		End:   end,
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUpstream, "Meeting create failed.")
	}
	if meeting.JoinURL == "" {
		return "", apperrors.Upstream("Meeting provider returned no join link.")
	}
	return meeting.JoinURL, nil
}

// Create schedules the interview for an application. At most one interview
// exists per application; a second attempt conflicts.
func (s *InterviewService) Create(ctx context.Context, actor model.Actor, applicationID string, req *model.CreateInterviewRequest) (*model.Interview, error) {
	req.Sanitize()
	if details := req.Validate(); len(details) > 0 {
		return nil, apperrors.ValidationDetails("Validation failed.", details)
	}

	app, job, err := s.loadApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	rel := authz.Relate(actor, *app, *job)
	if !authz.CanScheduleInterview(actor, rel) {
		return nil, apperrors.Forbidden("Only the posting owner can schedule interviews.")
	}
	if app.Status.Closed() {
		return nil, apperrors.Conflictf("Application is closed (%s).", app.Status)
	}

	mode := model.InterviewMode(req.Mode)
	meetingLink := req.MeetingLink
	if mode == model.InterviewModeVideo && meetingLink == "" {
		meetingLink, err = s.provisionMeeting(ctx, job, req.ScheduledStart, req.ScheduledEnd)
		if err != nil {
			return nil, err
		}
	}
	if mode == model.InterviewModeVideo && meetingLink == "" {
		return nil, apperrors.Validation("meeting_link required for video mode.")
	}

	iv, err := s.interviews.Create(ctx, &model.Interview{
		ApplicationID:    applicationID,
		ScheduledStart:   req.ScheduledStart,
		ScheduledEnd:     req.ScheduledEnd,
		Mode:             mode,
		MeetingLink:      meetingLink,
		LocationText:     req.LocationText,
		CreatedByActorID: actor.ID,
	})
	if err != nil {
		if errors.Is(err, data.ErrInterviewExists) {
			return nil, apperrors.Conflict("An interview already exists for this application.")
		}
		return nil, err
	}
	return iv, nil
}

func (s *InterviewService) loadInterview(ctx context.Context, id string) (*model.Interview, *model.JobApplication, *model.JobPosting, error) {
	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrInterviewNotFound) {
			return nil, nil, nil, apperrors.NotFound("Interview not found.")
		}
		return nil, nil, nil, err
	}
	app, job, err := s.loadApplication(ctx, iv.ApplicationID)
	if err != nil {
		return nil, nil, nil, err
	}
	return iv, app, job, nil
}

// Update edits the interview. Schedule changes move the interview to
// rescheduled unless the (possibly just-set) status is confirmed or
// completed.
func (s *InterviewService) Update(ctx context.Context, actor model.Actor, id string, req *model.UpdateInterviewRequest) (*model.Interview, error) {
	iv, app, job, err := s.loadInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	rel := authz.Relate(actor, *app, *job)
	if !authz.CanScheduleInterview(actor, rel) {
		return nil, apperrors.Forbidden("Only the posting owner can edit interviews.")
	}
	if iv.Status.Terminal() {
		return nil, apperrors.Conflict("Cannot edit cancelled/completed interview.")
	}

	mode := iv.Mode
	if req.Mode != nil {
		mode = model.InterviewMode(sanitize.CleanText(*req.Mode, 40))
		if !mode.Valid() {
			return nil, apperrors.Validation("mode is invalid.")
		}
	}
	meetingLink := iv.MeetingLink
	if req.MeetingLink != nil {
		meetingLink = sanitize.CleanText(*req.MeetingLink, 600)
	}
	locationText := iv.LocationText
	if req.LocationText != nil {
		locationText = sanitize.CleanText(*req.LocationText, 600)
	}
	start, end := iv.ScheduledStart, iv.ScheduledEnd
	if req.ScheduledStart != nil {
		start = *req.ScheduledStart
	}
	if req.ScheduledEnd != nil {
		end = *req.ScheduledEnd
	}
	if !end.After(start) {
		return nil, apperrors.Validation("scheduled_end must be after scheduled_start.")
	}

	if mode == model.InterviewModeInPerson && locationText == "" {
		return nil, apperrors.Validation("location_text required for in_person mode.")
	}
	if mode == model.InterviewModeVideo && meetingLink == "" {
		meetingLink, err = s.provisionMeeting(ctx, job, start, end)
		if err != nil {
			return nil, err
		}
	}

	status := iv.Status
	if req.Status != nil {
		status = model.InterviewStatus(sanitize.CleanText(*req.Status, 40))
		if !status.Valid() {
			return nil, apperrors.Validation("status is invalid.")
		}
	}
	if req.ScheduleChanged() && status != model.InterviewStatusConfirmed && status != model.InterviewStatusCompleted {
		status = model.InterviewStatusRescheduled
	}

	loadedStatus := iv.Status
	iv.ScheduledStart = start
	iv.ScheduledEnd = end
	iv.Mode = mode
	iv.MeetingLink = meetingLink
	iv.LocationText = locationText
	iv.Status = status
	return s.persist(ctx, iv, loadedStatus)
}

// Cancel cancels the interview. Cancelling twice is a no-op success;
// cancelling a completed interview conflicts. The applicant may cancel their
// own interview.
func (s *InterviewService) Cancel(ctx context.Context, actor model.Actor, id string, req *model.CancelInterviewRequest) (*model.Interview, error) {
	iv, app, job, err := s.loadInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	rel := authz.Relate(actor, *app, *job)
	if !authz.CanCancelInterview(actor, rel) {
		return nil, apperrors.Forbidden("You have no access to this interview.")
	}

	if iv.Status == model.InterviewStatusCancelled {
		return iv, nil
	}
	if iv.Status == model.InterviewStatusCompleted {
		return nil, apperrors.Conflict("Completed interview cannot be cancelled.")
	}

	req.Sanitize()
	loadedStatus := iv.Status
	iv.Status = model.InterviewStatusCancelled
	iv.CancelReason = req.CancelReason
	return s.persist(ctx, iv, loadedStatus)
}

// persist writes the interview conditional on the status it was loaded with,
// so concurrent edits against the same row surface as a conflict instead of
// silently overwriting each other.
func (s *InterviewService) persist(ctx context.Context, iv *model.Interview, loadedStatus model.InterviewStatus) (*model.Interview, error) {
	updated, err := s.interviews.Update(ctx, iv, loadedStatus)
	if err != nil {
		if errors.Is(err, data.ErrInterviewStatusChanged) {
			return nil, apperrors.Conflict("Interview was modified concurrently. Reload and retry.")
		}
		return nil, err
	}
	return updated, nil
}

// List returns interviews visible to the actor, ordered by start time.
// Admins see all, owners see interviews against their postings, applicants
// see their own.
func (s *InterviewService) List(ctx context.Context, actor model.Actor) ([]*model.Interview, error) {
	params := core.ListInterviewsParams{}
	switch {
	case actor.IsAdmin():
	case actor.Role.IsOwnerRole():
		params.OwnerActorID = actor.ID
		params.OwnerType = actor.Role
	default:
		params.ApplicantActorID = actor.ID
	}
	return s.interviews.ListForActor(ctx, params)
}

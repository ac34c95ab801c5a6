package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/mocks"
	"go.uber.org/mock/gomock"
)

func newPostingService(ctrl *gomock.Controller) (*PostingService, *mocks.MockPostingRepository) {
	repo := mocks.NewMockPostingRepository(ctrl)
	svc := NewPostingService(PostingServiceOptions{
		PostingRepo: repo,
		Now:         func() time.Time { return testNow },
	})
	return svc, repo
}

func validPostingRequest() *model.CreatePostingRequest {
	return &model.CreatePostingRequest{
		Title:          "Staff Nurse",
		Description:    "Ward duty, rotating shifts.",
		EmploymentType: "full_time",
		WorkMode:       "on_site",
		City:           "Manila",
	}
}

func TestPostingService_Create_Draft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)
	actor := model.Actor{ID: "agency-1", Role: model.RoleAgency}

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, job *model.JobPosting) (*model.JobPosting, error) {
			assert.Equal(t, model.RoleAgency, job.OwnerType)
			assert.Equal(t, actor.ID, job.OwnerActorID)
			assert.Equal(t, "Staff Nurse", job.Title)
			assert.Equal(t, model.EmploymentFullTime, job.EmploymentType)
			created := *job
			created.ID = "post-1"
			created.Status = model.PostingStatusDraft
			return &created, nil
		},
	)

	job, err := svc.Create(ctx, actor, validPostingRequest())
	require.NoError(t, err)
	assert.Equal(t, "post-1", job.ID)
	assert.Equal(t, model.PostingStatusDraft, job.Status)
}

func TestPostingService_Create_ApplicantForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _ := newPostingService(ctrl)

	_, err := svc.Create(ctx, model.Actor{ID: "app-1", Role: model.RoleApplicant}, validPostingRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestPostingService_Create_ValidationDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _ := newPostingService(ctrl)
	actor := model.Actor{ID: "emp-1", Role: model.RoleEmployer}

	req := validPostingRequest()
	req.Title = "ab"
	req.WorkMode = "teleport"

	_, err := svc.Create(ctx, actor, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	details := apperrors.GetDetails(err)
	assert.Contains(t, details, "title is required (min 3 chars).")
	assert.Contains(t, details, "work_mode is invalid.")
}

func TestPostingService_GetByID_DraftHiddenFromOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)

	draft := &model.JobPosting{ID: "post-1", OwnerType: model.RoleEmployer, OwnerActorID: "emp-1", Status: model.PostingStatusDraft}
	repo.EXPECT().GetByID(ctx, "post-1").Return(draft, nil).Times(2)

	// a stranger reads the draft as missing
	_, err := svc.GetByID(ctx, model.Actor{ID: "app-1", Role: model.RoleApplicant}, "post-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	// the owner sees it
	got, err := svc.GetByID(ctx, model.Actor{ID: "emp-1", Role: model.RoleEmployer}, "post-1")
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestPostingService_Update_OwnerRoleTagMustMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)

	// same id, wrong role tag: not the owner
	stored := &model.JobPosting{ID: "post-1", OwnerType: model.RoleEmployer, OwnerActorID: "actor-1", Status: model.PostingStatusDraft}
	repo.EXPECT().GetByID(ctx, "post-1").Return(stored, nil)

	title := "Head Nurse"
	_, err := svc.Update(ctx, model.Actor{ID: "actor-1", Role: model.RoleAgency}, "post-1", &model.UpdatePostingRequest{Title: &title})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestPostingService_Publish_SetsTimestampAndClearsArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)
	actor := model.Actor{ID: "emp-1", Role: model.RoleEmployer}

	archivedAt := testNow.Add(-48 * time.Hour)
	stored := &model.JobPosting{
		ID: "post-1", OwnerType: model.RoleEmployer, OwnerActorID: actor.ID,
		Status: model.PostingStatusArchived, ArchivedAt: &archivedAt,
	}
	repo.EXPECT().GetByID(ctx, "post-1").Return(stored, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, job *model.JobPosting) (*model.JobPosting, error) {
			assert.Equal(t, model.PostingStatusPublished, job.Status)
			require.NotNil(t, job.PublishedAt)
			assert.Equal(t, testNow.UTC(), *job.PublishedAt)
			assert.Nil(t, job.ArchivedAt)
			return job, nil
		},
	)

	job, err := svc.Publish(ctx, actor, "post-1")
	require.NoError(t, err)
	assert.Equal(t, model.PostingStatusPublished, job.Status)
}

func TestPostingService_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)
	actor := model.Actor{ID: "emp-1", Role: model.RoleEmployer}

	stored := &model.JobPosting{ID: "post-1", OwnerType: model.RoleEmployer, OwnerActorID: actor.ID, Status: model.PostingStatusPublished}
	repo.EXPECT().GetByID(ctx, "post-1").Return(stored, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, job *model.JobPosting) (*model.JobPosting, error) {
			assert.Equal(t, model.PostingStatusArchived, job.Status)
			require.NotNil(t, job.ArchivedAt)
			assert.Equal(t, testNow.UTC(), *job.ArchivedAt)
			return job, nil
		},
	)

	_, err := svc.Archive(ctx, actor, "post-1")
	require.NoError(t, err)
}

func TestPostingService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)

	repo.EXPECT().GetByID(ctx, "gone").Return(nil, data.ErrPostingNotFound)

	err := svc.Delete(ctx, model.Actor{ID: "emp-1", Role: model.RoleEmployer}, "gone")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPostingService_ListPublic_ForcesPublishedOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)

	repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params core.ListPostingsParams) ([]*model.JobPosting, error) {
			assert.True(t, params.Opts.PublishedOnly)
			assert.Empty(t, params.OwnerActorID)
			assert.Equal(t, 20, params.Limit)
			return []*model.JobPosting{{ID: "post-1"}}, nil
		},
	)

	got, err := svc.ListPublic(ctx, model.PostingListOptions{Search: "nurse"}, 20, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPostingService_ListOwned_Scoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, repo := newPostingService(ctrl)

	// owner scope pins both the actor id and the role tag
	repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params core.ListPostingsParams) ([]*model.JobPosting, error) {
			assert.Equal(t, "agency-1", params.OwnerActorID)
			assert.Equal(t, model.RoleAgency, params.OwnerType)
			return nil, nil
		},
	)
	_, err := svc.ListOwned(ctx, model.Actor{ID: "agency-1", Role: model.RoleAgency}, model.PostingListOptions{}, 20, 0)
	require.NoError(t, err)

	// admins list unscoped
	repo.EXPECT().List(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params core.ListPostingsParams) ([]*model.JobPosting, error) {
			assert.Empty(t, params.OwnerActorID)
			return nil, nil
		},
	)
	_, err = svc.ListOwned(ctx, model.Actor{ID: "admin-1", Role: model.RoleAdmin}, model.PostingListOptions{}, 20, 0)
	require.NoError(t, err)

	// applicants have no owned postings
	_, err = svc.ListOwned(ctx, model.Actor{ID: "app-1", Role: model.RoleApplicant}, model.PostingListOptions{}, 20, 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))

	// bad status filter
	_, err = svc.ListOwned(ctx, model.Actor{ID: "agency-1", Role: model.RoleAgency}, model.PostingListOptions{Status: "open"}, 20, 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

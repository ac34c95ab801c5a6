package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/mocks"
	"go.uber.org/mock/gomock"
)

func newLookupService(ctrl *gomock.Controller) (*LookupService, intakeMocks) {
	m := intakeMocks{
		customers: mocks.NewMockCustomerRepository(ctrl),
		vehicles:  mocks.NewMockVehicleRepository(ctrl),
		jobs:      mocks.NewMockIntakeJobRepository(ctrl),
	}
	svc := NewLookupService(LookupServiceOptions{
		CustomerRepo: m.customers,
		VehicleRepo:  m.vehicles,
		JobRepo:      m.jobs,
	})
	return svc, m
}

func TestLookupService_ByPhone_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newLookupService(ctrl)
	actor := model.Actor{ID: "owner-1", Role: model.RoleEmployer}

	customer := &model.Customer{ID: "cust-1", OwnerActorID: actor.ID, Phone: "09171234567"}
	vehicles := []*model.Vehicle{{ID: "veh-1", CustomerID: customer.ID}}
	jobs := []*model.IntakeJobSummary{{ID: "job-1", Status: model.IntakeStatusInProgress}}

	// the lookup normalizes formatting before hitting the repository
	m.customers.EXPECT().FindByPhone(ctx, actor.ID, "09171234567").Return(customer, nil)
	m.vehicles.EXPECT().ListByCustomer(ctx, customer.ID, lookupLimit).Return(vehicles, nil)
	m.jobs.EXPECT().ListByCustomer(ctx, customer.ID, lookupLimit).Return(jobs, nil)

	got, err := svc.ByPhone(ctx, actor, "0917 123 4567")
	require.NoError(t, err)
	assert.True(t, got.Found)
	assert.Equal(t, customer, got.Customer)
	assert.Equal(t, vehicles, got.Vehicles)
	assert.Equal(t, jobs, got.Jobs)
}

func TestLookupService_ByPhone_Miss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, m := newLookupService(ctrl)
	actor := model.Actor{ID: "owner-1", Role: model.RoleAgency}

	m.customers.EXPECT().FindByPhone(ctx, actor.ID, "09171234567").Return(nil, data.ErrCustomerNotFound)

	got, err := svc.ByPhone(ctx, actor, "09171234567")
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Nil(t, got.Customer)
	assert.Nil(t, got.Vehicles)
	assert.Nil(t, got.Jobs)
}

func TestLookupService_ByPhone_InvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _ := newLookupService(ctrl)
	actor := model.Actor{ID: "owner-1", Role: model.RoleEmployer}

	_, err := svc.ByPhone(ctx, actor, "12")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.ByPhone(ctx, actor, "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestLookupService_ByPhone_ApplicantForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	svc, _ := newLookupService(ctrl)

	_, err := svc.ByPhone(ctx, model.Actor{ID: "app-1", Role: model.RoleApplicant}, "09171234567")
	require.Error(t, err)
	assert.True(t, apperrors.IsForbidden(err))
}

package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/testutil"
)

func createTestIntakeJob(t *testing.T, db *sql.DB, owner *model.User) *model.IntakeJob {
	t.Helper()
	customer := createTestCustomer(t, db, owner)
	vehicle, err := NewVehicleRepo(db).Create(context.Background(), core.CreateVehicleParams{
		OwnerActorID: owner.ID,
		CustomerID:   customer.ID,
		Input:        model.VehicleInput{Make: "Toyota", Model: "Vios", Year: "2021"},
	})
	require.NoError(t, err)

	job, err := NewIntakeJobRepo(db).Create(context.Background(), &model.IntakeJob{
		OwnerActorID:     owner.ID,
		CustomerID:       customer.ID,
		VehicleID:        vehicle.ID,
		CustomerSnapshot: *customer,
		VehicleSnapshot:  *vehicle,
		OBD2Data:         "P0301",
		Symptoms:         "rough idle, misfire under load",
		Media:            []string{"https://cdn.example/clip1.mp4"},
		Preferences:      model.Preferences{DetailLevel: "standard", Language: "en", Tone: "neutral"},
		Diagnosis: model.DiagnosisResult{
			MostLikelyIssue: "Cylinder 1 ignition coil failure",
			ConfidenceLevel: 0.82,
		},
		RawAIText:   `{"mostLikelyIssue":"Cylinder 1 ignition coil failure"}`,
		AIModelID:   "gpt-4o-mini",
		GeneratedOn: time.Now().UTC(),
	})
	require.NoError(t, err)
	return job
}

func TestIntakeJobRepo_Create_Get(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewIntakeJobRepo(db)
		owner := createTestUser(t, db, model.RoleEmployer)

		job := createTestIntakeJob(t, db, owner)
		require.NotEmpty(t, job.ID)
		assert.Equal(t, model.IntakeStatusInProgress, job.Status)

		got, err := repo.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "P0301", got.OBD2Data)
		assert.Equal(t, "Cylinder 1 ignition coil failure", got.Diagnosis.MostLikelyIssue)
		assert.InDelta(t, 0.82, got.Diagnosis.ConfidenceLevel, 0.001)
		// snapshots round-trip through jsonb
		assert.Equal(t, job.CustomerSnapshot.Phone, got.CustomerSnapshot.Phone)
		assert.Equal(t, "Vios", got.VehicleSnapshot.Model)

		_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, ErrIntakeNotFound)
	})
}

func TestIntakeJobRepo_Update_ListByCustomer(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewIntakeJobRepo(db)
		owner := createTestUser(t, db, model.RoleEmployer)

		job := createTestIntakeJob(t, db, owner)

		job.Status = model.IntakeStatusCancelled
		job.CancelNotes = "customer sold the vehicle"
		updated, err := repo.Update(ctx, job, model.IntakeStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, model.IntakeStatusCancelled, updated.Status)
		assert.Equal(t, "customer sold the vehicle", updated.CancelNotes)

		summaries, err := repo.ListByCustomer(ctx, job.CustomerID, 10)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, job.ID, summaries[0].ID)
		assert.Equal(t, "Cylinder 1 ignition coil failure", summaries[0].MostLikelyIssue)
		assert.InDelta(t, 0.82, summaries[0].ConfidenceLevel, 0.001)
		assert.Equal(t, model.IntakeStatusCancelled, summaries[0].Status)
	})
}

func TestIntakeJobRepo_Update_StaleStatusDoesNotOverwrite(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewIntakeJobRepo(db)
		owner := createTestUser(t, db, model.RoleEmployer)

		job := createTestIntakeJob(t, db, owner)
		job.Status = model.IntakeStatusCompleted
		_, err := repo.Update(ctx, job, model.IntakeStatusInProgress)
		require.NoError(t, err)

		// a second writer still holding the in_progress read loses
		stale := *job
		stale.Status = model.IntakeStatusCancelled
		stale.CancelNotes = "customer backed out"
		_, err = repo.Update(ctx, &stale, model.IntakeStatusInProgress)
		assert.ErrorIs(t, err, ErrIntakeStatusChanged)

		got, err := repo.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, model.IntakeStatusCompleted, got.Status)
		assert.Empty(t, got.CancelNotes)
	})
}

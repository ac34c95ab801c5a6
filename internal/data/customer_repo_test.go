package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/testutil"
)

func TestCustomerRepo_UpsertByPhone(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCustomerRepo(db)
		owner := createTestUser(t, db, model.RoleEmployer)
		otherOwner := createTestUser(t, db, model.RoleAgency)

		first, err := repo.UpsertByPhone(ctx, core.UpsertCustomerParams{
			OwnerActorID: owner.ID,
			Input: model.CustomerInput{
				FullName:               "Maria Santos",
				Phone:                  "+639175550134",
				Email:                  "maria@example.com",
				PreferredContactMethod: "text",
			},
		})
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)

		// same (owner, phone) refreshes the record instead of duplicating it
		second, err := repo.UpsertByPhone(ctx, core.UpsertCustomerParams{
			OwnerActorID: owner.ID,
			Input: model.CustomerInput{
				FullName:               "Maria L. Santos",
				Phone:                  "+639175550134",
				Email:                  "maria.santos@example.com",
				PreferredContactMethod: "email",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Maria L. Santos", second.FullName)
		assert.Equal(t, "email", string(second.PreferredContactMethod))

		// the same phone under a different owner is a different customer
		foreign, err := repo.UpsertByPhone(ctx, core.UpsertCustomerParams{
			OwnerActorID: otherOwner.ID,
			Input:        model.CustomerInput{FullName: "Maria Santos", Phone: "+639175550134"},
		})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, foreign.ID)

		found, err := repo.FindByPhone(ctx, owner.ID, "+639175550134")
		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)

		_, err = repo.FindByPhone(ctx, owner.ID, "+10000000000")
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestVehicleRepo_Create_ListByCustomer(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewVehicleRepo(db)
		owner := createTestUser(t, db, model.RoleEmployer)
		customer := createTestCustomer(t, db, owner)

		v, err := repo.Create(ctx, core.CreateVehicleParams{
			OwnerActorID: owner.ID,
			CustomerID:   customer.ID,
			Input: model.VehicleInput{
				VIN:          "1HGCM82633A004352",
				Plate:        "NCR-4821",
				Year:         "2019",
				Make:         "Honda",
				Model:        "Accord",
				Engine:       "2.4L I4",
				Transmission: "automatic",
			},
		})
		require.NoError(t, err)
		require.NotEmpty(t, v.ID)
		assert.Equal(t, customer.ID, v.CustomerID)

		got, err := repo.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, "1HGCM82633A004352", got.VIN)

		list, err := repo.ListByCustomer(ctx, customer.ID, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, v.ID, list[0].ID)
	})
}

func createTestCustomer(t *testing.T, db *sql.DB, owner *model.User) *model.Customer {
	t.Helper()
	c, err := NewCustomerRepo(db).UpsertByPhone(context.Background(), core.UpsertCustomerParams{
		OwnerActorID: owner.ID,
		Input: model.CustomerInput{
			FullName: "Test Customer",
			Phone:    "+639170000001",
		},
	})
	require.NoError(t, err)
	return c
}

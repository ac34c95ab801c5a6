package data

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixhire/fixhire-api/internal/domain/model"
	"github.com/fixhire/fixhire-api/internal/testutil"
)

func TestUserRepo_Create_Get(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewUserRepo(db)

		email := fmt.Sprintf("owner-%d@test.dev", time.Now().UnixNano())
		u, err := repo.Create(ctx, &model.User{
			Name:         "Shop Owner",
			Email:        email,
			PasswordHash: "$2a$10$notarealhash",
			Role:         model.RoleEmployer,
		})
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		assert.Equal(t, model.RoleEmployer, u.Role)
		assert.NotZero(t, u.CreatedAt)

		byID, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, email, byID.Email)

		byEmail, err := repo.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		// duplicate email is rejected by the unique constraint
		_, err = repo.Create(ctx, &model.User{
			Name:         "Impostor",
			Email:        email,
			PasswordHash: "$2a$10$notarealhash",
			Role:         model.RoleApplicant,
		})
		assert.ErrorIs(t, err, ErrEmailExists)

		_, err = repo.GetByEmail(ctx, "missing@test.dev")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

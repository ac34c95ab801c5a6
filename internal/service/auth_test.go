package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newAuthService(users *mocks.MockUserRepository, sessions *mocks.MockSessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		UserRepo: users,
		Sessions: sessions,
		Now:      func() time.Time { return testNow },
	})
}

func TestAuthService_Register_CreatesUserAndSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	mockUsers.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *model.User) (*model.User, error) {
			assert.Equal(t, "Maria Santos", u.Name)
			assert.Equal(t, "maria@example.com", u.Email)
			assert.Equal(t, model.RoleEmployer, u.Role)
			// the stored hash must verify against the original password
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Sup3rSecret")))
			created := *u
			created.ID = "user-1"
			return &created, nil
		},
	)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, sess model.Session) error {
			assert.NotEmpty(t, sess.Token)
			assert.Equal(t, "user-1", sess.UserID)
			assert.Equal(t, model.RoleEmployer, sess.Role)
			assert.Equal(t, testNow.Add(DefaultSessionTTL), sess.ExpiresAt)
			return nil
		},
	)

	user, sess, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "  Maria Santos ",
		Email:    "MARIA@example.com",
		Password: "Sup3rSecret",
		Role:     "employer",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, sess)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, user.ID, sess.UserID)
}

func TestAuthService_Register_AdminRoleFallsBackToApplicant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	mockUsers.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *model.User) (*model.User, error) {
			assert.Equal(t, model.RoleApplicant, u.Role)
			created := *u
			created.ID = "user-2"
			return &created, nil
		},
	)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	user, _, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Eve",
		Email:    "eve@example.com",
		Password: "Sup3rSecret",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleApplicant, user.Role)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	// no repo or session calls on validation failure

	_, _, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "alllowercase",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, apperrors.GetDetails(err), "Password must include uppercase, lowercase, and a number.")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	mockUsers.EXPECT().Create(ctx, gomock.Any()).Return(nil, data.ErrEmailExists)

	_, _, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "Sup3rSecret",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{ID: "user-1", Email: "maria@example.com", PasswordHash: string(hash), Role: model.RoleAgency}

	mockUsers.EXPECT().GetByEmail(ctx, "maria@example.com").Return(stored, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	user, sess, err := svc.Login(ctx, &model.LoginRequest{Email: "Maria@Example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
	assert.Equal(t, model.RoleAgency, sess.Role)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	mockUsers.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, data.ErrUserNotFound)

	_, _, err := svc.Login(ctx, &model.LoginRequest{Email: "ghost@example.com", Password: "whatever1A"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Invalid email or password.", err.Error())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.MinCost)
	require.NoError(t, err)
	mockUsers.EXPECT().GetByEmail(ctx, "maria@example.com").
		Return(&model.User{ID: "user-1", PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(ctx, &model.LoginRequest{Email: "maria@example.com", Password: "NotTheOne1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	// unknown email and wrong password are indistinguishable
	assert.Equal(t, "Invalid email or password.", err.Error())
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	want := model.Session{Token: "tok-1", UserID: "user-1", Role: model.RoleApplicant}
	mockSessions.EXPECT().Get(ctx, "tok-1").Return(want, nil)

	sess, err := svc.Authenticate(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, want, sess)
}

func TestAuthService_Authenticate_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	mockSessions.EXPECT().Get(ctx, "nope").Return(model.Session{}, assert.AnError)

	_, err := svc.Authenticate(ctx, "nope")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestAuthService_Me_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	mockUsers.EXPECT().GetByID(ctx, "gone").Return(nil, data.ErrUserNotFound)

	_, err := svc.Me(ctx, "gone")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAuthService_Logout_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockSessions := mocks.NewMockSessionStore(ctrl)
	svc := newAuthService(mockUsers, mockSessions)

	mockSessions.EXPECT().Delete(ctx, "tok-1").Return(nil)

	require.NoError(t, svc.Logout(ctx, "tok-1"))
}

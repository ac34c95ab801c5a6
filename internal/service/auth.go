package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fixhire/fixhire-api/internal/core"
	"github.com/fixhire/fixhire-api/internal/data"
	"github.com/fixhire/fixhire-api/internal/domain/model"
	apperrors "github.com/fixhire/fixhire-api/internal/errors"
	"github.com/fixhire/fixhire-api/internal/ports"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	UserRepo   core.UserRepository
	Sessions   ports.SessionStore
	SessionTTL time.Duration
	Now        func() time.Time
}

// AuthService handles registration, login, and bearer session lifecycle.
type AuthService struct {
	users      core.UserRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{users: opts.UserRepo, sessions: opts.Sessions, sessionTTL: ttl, now: now}
}

// Register creates an account and an initial session. The admin role cannot
// be self-assigned; unknown roles default to applicant.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, *model.Session, error) {
	req.Sanitize()
	if details := req.Validate(); len(details) > 0 {
		return nil, nil, apperrors.ValidationDetails("Validation failed.", details)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}

	user, err := s.users.Create(ctx, &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, data.ErrEmailExists) {
			return nil, nil, apperrors.Conflict("Email is already registered.")
		}
		return nil, nil, err
	}

	sess, err := s.startSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, sess, nil
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords produce the same response.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, *model.Session, error) {
	req.Sanitize()
	if details := req.Validate(); len(details) > 0 {
		return nil, nil, apperrors.ValidationDetails("Validation failed.", details)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, nil, apperrors.Unauthorized("Invalid email or password.")
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, apperrors.Unauthorized("Invalid email or password.")
	}

	sess, err := s.startSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, sess, nil
}

// Authenticate resolves a bearer token to its session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (model.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return model.Session{}, apperrors.Unauthorized("Invalid or expired session.")
	}
	return sess, nil
}

// Me loads the account behind an actor.
func (s *AuthService) Me(ctx context.Context, actorID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("Account not found.")
		}
		return nil, err
	}
	return user, nil
}

// Logout deletes the session. Deleting an unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) startSession(ctx context.Context, user *model.User) (*model.Session, error) {
	now := s.now()
	sess := model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "save session")
	}
	return &sess, nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sportbook/internal/apperr"
	"sportbook/internal/auth"
	"sportbook/internal/db"
	"sportbook/internal/logger"
)

var (
	ErrEmailExists        = apperr.Conflict("Email already registered")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) issue(u *User) (*AuthResponse, error) {
	pair, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("issue tokens: %w", err))
	}
	return &AuthResponse{TokenPair: *pair, User: *u}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	u, err := s.repo.Create(ctx, strings.TrimSpace(req.Name), email, passwordHash, auth.RoleUser)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, apperr.Internal(err)
	}

	logger.Info("user registered", "user_id", u.ID)
	return s.issue(u)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(u)
}

// Refresh re-reads the user so a role change takes effect on the next pair.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	_, claims, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return s.issue(u)
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// EnsureAdmin creates the bootstrap admin account, or promotes an existing
// account with that email. The password of an existing account is left alone.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	u, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if u.IsAdmin() {
			return nil
		}
		if err := s.repo.UpdateRole(ctx, u.ID, auth.RoleAdmin); err != nil {
			return fmt.Errorf("promote admin: %w", err)
		}
		logger.Info("existing user promoted to admin", "user_id", u.ID)
		return nil
	case !errors.Is(err, ErrUserNotFound):
		return fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	u, err = s.repo.Create(ctx, "Administrator", email, hash, auth.RoleAdmin)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	logger.Info("admin account created", "user_id", u.ID)
	return nil
}

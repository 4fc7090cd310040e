package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BrahmVanH/uw-pantry-service/internal/logger"
	"github.com/BrahmVanH/uw-pantry-service/internal/model"
	"github.com/BrahmVanH/uw-pantry-service/internal/password"
)

// TokenIssuer mints bearer tokens for authenticated subjects.
type TokenIssuer interface {
	Issue(subjectID, email string) (string, error)
}

// Identity handles user registration, login, and account operations.
type Identity struct {
	users  model.UserStore
	tokens TokenIssuer
	logger *logger.Logger
}

// NewIdentity constructs an Identity service.
func NewIdentity(users model.UserStore, tokens TokenIssuer, logger *logger.Logger) *Identity {
	return &Identity{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// CreateUser registers a new user. The email-uniqueness check here is a
// read-then-write, not a conditional put: concurrent registrations with the
// same email can race. Known gap, inherited from the storage design.
func (s *Identity) CreateUser(ctx context.Context, email, plainPassword, firstName, lastName string) (model.User, error) {
	s.logger.Debug("Identity service: creating user", "email", email)

	if !strings.Contains(email, "@") {
		return model.User{}, fmt.Errorf("%w: invalid email %q", model.ErrValidation, email)
	}
	if plainPassword == "" {
		return model.User{}, fmt.Errorf("%w: empty password", model.ErrValidation)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("Identity service: failed to check existing email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing.ID != "" {
		return model.User{}, fmt.Errorf("%w: email already registered", model.ErrValidation)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		s.logger.Error("Identity service: failed to hash password", "error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error("Identity service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Identity service: user created", "email", email, "id", created.ID)

	return created, nil
}

// VerifyLogin checks credentials and returns the subject id and a fresh
// bearer token. Unknown emails and wrong passwords both map to
// ErrUnauthorized so callers cannot probe for account existence.
func (s *Identity) VerifyLogin(ctx context.Context, email, plainPassword string) (string, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", "", model.ErrUnauthorized
		}
		s.logger.Error("Identity service: failed to get user for login",
			"email", email,
			"error", err.Error())
		return "", "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !password.Verify(plainPassword, user.PasswordHash) {
		return "", "", model.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Identity service: failed to issue token",
			"email", email,
			"error", err.Error())
		return "", "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Identity service: login verified", "email", email, "id", user.ID)

	return user.ID, token, nil
}

// ChangePassword rehashes with a fresh salt and refreshes updated_at.
func (s *Identity) ChangePassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: empty password", model.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("Identity service: failed to update password",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("Identity service: password changed", "email", email)

	return nil
}

// GetUser returns the user with the given id.
func (s *Identity) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetUserByEmail returns the user with the given email.
func (s *Identity) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// ListUsers returns all users. Records that fail to map are skipped by the
// store, never abort the whole list.
func (s *Identity) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes the user with the given email.
func (s *Identity) DeleteUser(ctx context.Context, email string) error {
	if err := s.users.DeleteByEmail(ctx, email); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		s.logger.Error("Identity service: failed to delete user",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("Identity service: user deleted", "email", email)

	return nil
}

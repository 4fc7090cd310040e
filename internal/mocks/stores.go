// Package mocks provides testify-based mocks for the model store interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) DeleteByEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// PantryStore is a mock implementation of model.PantryStore.
type PantryStore struct {
	mock.Mock
}

func (m *PantryStore) GetByID(ctx context.Context, id string) (model.Pantry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Pantry), args.Error(1)
}

func (m *PantryStore) List(ctx context.Context) ([]model.Pantry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pantry), args.Error(1)
}

func (m *PantryStore) ListSelfManaged(ctx context.Context, selfManaged bool) ([]model.Pantry, error) {
	args := m.Called(ctx, selfManaged)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pantry), args.Error(1)
}

func (m *PantryStore) Create(ctx context.Context, pantry model.Pantry) (model.Pantry, error) {
	args := m.Called(ctx, pantry)
	return args.Get(0).(model.Pantry), args.Error(1)
}

func (m *PantryStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AccessStore is a mock implementation of model.AccessStore.
type AccessStore struct {
	mock.Mock
}

func (m *AccessStore) Get(ctx context.Context, pantryID, userID string) (model.PantryAccess, error) {
	args := m.Called(ctx, pantryID, userID)
	return args.Get(0).(model.PantryAccess), args.Error(1)
}

func (m *AccessStore) ListByPantry(ctx context.Context, pantryID string) ([]model.PantryAccess, error) {
	args := m.Called(ctx, pantryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PantryAccess), args.Error(1)
}

func (m *AccessStore) ListByUser(ctx context.Context, userID string) ([]model.PantryAccess, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PantryAccess), args.Error(1)
}

func (m *AccessStore) ListByLevel(ctx context.Context, pantryID string, level model.AccessLevel) ([]model.PantryAccess, error) {
	args := m.Called(ctx, pantryID, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PantryAccess), args.Error(1)
}

func (m *AccessStore) GetContactAgent(ctx context.Context, pantryID string) (model.PantryAccess, error) {
	args := m.Called(ctx, pantryID)
	return args.Get(0).(model.PantryAccess), args.Error(1)
}

func (m *AccessStore) Create(ctx context.Context, access model.PantryAccess) (model.PantryAccess, error) {
	args := m.Called(ctx, access)
	return args.Get(0).(model.PantryAccess), args.Error(1)
}

func (m *AccessStore) Delete(ctx context.Context, pantryID, userID string) error {
	args := m.Called(ctx, pantryID, userID)
	return args.Error(0)
}

// TokenIssuer is a mock implementation of service.TokenIssuer.
type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) Issue(subjectID, email string) (string, error) {
	args := m.Called(subjectID, email)
	return args.String(0), args.Error(1)
}

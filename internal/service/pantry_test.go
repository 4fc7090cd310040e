package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BrahmVanH/uw-pantry-service/internal/mocks"
	"github.com/BrahmVanH/uw-pantry-service/internal/model"
	"github.com/BrahmVanH/uw-pantry-service/internal/testutil"
)

func TestPantry_CreatePantry(t *testing.T) {
	pantries := &mocks.PantryStore{}
	pantries.On("Create", mock.Anything, mock.AnythingOfType("model.Pantry")).Return(model.Pantry{}, nil)

	s := NewPantry(pantries, &mocks.AccessStore{}, testutil.MakeNoopLogger())

	_, err := s.CreatePantry(context.Background(), CreatePantryParams{
		Name:          "Northside Food Pantry",
		OptStatus:     "T2",
		Address:       model.Address{Street: "100 Main St", City: "Indianapolis", State: "IN", Zipcode: "46204"},
		IsSelfManaged: true,
		Phone:         "317-555-0100",
		Email:         "info@northside.org",
	})
	require.NoError(t, err)

	created := pantries.Calls[0].Arguments.Get(1).(model.Pantry)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.OptStatusT2, created.OptStatus)
	assert.True(t, created.IsSelfManaged)
	assert.Nil(t, created.Address.Unit)
}

func TestPantry_CreatePantry_UnknownOptStatus(t *testing.T) {
	s := NewPantry(&mocks.PantryStore{}, &mocks.AccessStore{}, testutil.MakeNoopLogger())

	_, err := s.CreatePantry(context.Background(), CreatePantryParams{
		Name:      "Pantry",
		OptStatus: "T9",
	})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestPantry_CreatePantry_EmptyName(t *testing.T) {
	s := NewPantry(&mocks.PantryStore{}, &mocks.AccessStore{}, testutil.MakeNoopLogger())

	_, err := s.CreatePantry(context.Background(), CreatePantryParams{OptStatus: "T1"})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestPantry_GrantAccess(t *testing.T) {
	access := &mocks.AccessStore{}
	access.On("Create", mock.Anything, mock.AnythingOfType("model.PantryAccess")).Return(model.PantryAccess{}, nil)

	s := NewPantry(&mocks.PantryStore{}, access, testutil.MakeNoopLogger())

	_, err := s.GrantAccess(context.Background(), GrantAccessParams{
		PantryID:       "pantry-1",
		UserID:         "user-1",
		AccessLevel:    "Staff",
		IsContactAgent: true,
	})
	require.NoError(t, err)

	created := access.Calls[0].Arguments.Get(1).(model.PantryAccess)
	assert.Equal(t, model.AccessLevelStaff, created.AccessLevel)
	assert.True(t, created.IsContactAgent)
}

func TestPantry_GrantAccess_InvalidParams(t *testing.T) {
	s := NewPantry(&mocks.PantryStore{}, &mocks.AccessStore{}, testutil.MakeNoopLogger())

	_, err := s.GrantAccess(context.Background(), GrantAccessParams{UserID: "user-1", AccessLevel: "Staff"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.GrantAccess(context.Background(), GrantAccessParams{
		PantryID:    "pantry-1",
		UserID:      "user-1",
		AccessLevel: "Overlord",
	})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestPantry_ListAccessByLevel_RejectsUnknownLevel(t *testing.T) {
	s := NewPantry(&mocks.PantryStore{}, &mocks.AccessStore{}, testutil.MakeNoopLogger())

	_, err := s.ListAccessByLevel(context.Background(), "pantry-1", "janitor")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestPantry_ContactAgent_NotFound(t *testing.T) {
	access := &mocks.AccessStore{}
	access.On("GetContactAgent", mock.Anything, "pantry-1").Return(model.PantryAccess{}, model.ErrNotFound)

	s := NewPantry(&mocks.PantryStore{}, access, testutil.MakeNoopLogger())

	_, err := s.ContactAgent(context.Background(), "pantry-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestPantry_RevokeAccess(t *testing.T) {
	access := &mocks.AccessStore{}
	access.On("Delete", mock.Anything, "pantry-1", "user-1").Return(nil)

	s := NewPantry(&mocks.PantryStore{}, access, testutil.MakeNoopLogger())

	require.NoError(t, s.RevokeAccess(context.Background(), "pantry-1", "user-1"))
	access.AssertExpectations(t)
}

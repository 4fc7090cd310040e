package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BrahmVanH/uw-pantry-service/internal/logger"
	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

// Pantry handles pantry records and user-to-pantry access.
type Pantry struct {
	pantries model.PantryStore
	access   model.AccessStore
	logger   *logger.Logger
}

// NewPantry constructs a Pantry service.
func NewPantry(pantries model.PantryStore, access model.AccessStore, logger *logger.Logger) *Pantry {
	return &Pantry{
		pantries: pantries,
		access:   access,
		logger:   logger,
	}
}

// CreatePantryParams contains parameters to create a pantry. OptStatus is
// the short-code string; unknown codes are rejected.
type CreatePantryParams struct {
	Name          string
	OptStatus     string
	Address       model.Address
	IsSelfManaged bool
	Phone         string
	Email         string
}

// CreatePantry validates parameters and stores a new pantry.
func (s *Pantry) CreatePantry(ctx context.Context, params CreatePantryParams) (model.Pantry, error) {
	s.logger.Debug("Pantry service: creating pantry", "name", params.Name)

	if params.Name == "" {
		return model.Pantry{}, fmt.Errorf("%w: empty pantry name", model.ErrValidation)
	}

	status, err := model.ParseOptStatus(params.OptStatus)
	if err != nil {
		return model.Pantry{}, err
	}

	now := time.Now().UTC()
	pantry := model.Pantry{
		ID:            uuid.NewString(),
		Name:          params.Name,
		IsSelfManaged: params.IsSelfManaged,
		OptStatus:     status,
		Address:       params.Address,
		Phone:         params.Phone,
		Email:         params.Email,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.pantries.Create(ctx, pantry)
	if err != nil {
		s.logger.Error("Pantry service: failed to create pantry",
			"name", params.Name,
			"error", err.Error())
		return model.Pantry{}, fmt.Errorf("failed to create pantry: %w", err)
	}

	s.logger.Info("Pantry service: pantry created", "id", created.ID, "name", created.Name)

	return created, nil
}

// GetPantry returns the pantry with the given id.
func (s *Pantry) GetPantry(ctx context.Context, id string) (model.Pantry, error) {
	return s.pantries.GetByID(ctx, id)
}

// ListPantries returns all pantries.
func (s *Pantry) ListPantries(ctx context.Context) ([]model.Pantry, error) {
	return s.pantries.List(ctx)
}

// ListSelfManaged returns pantries filtered by the self-managed flag.
func (s *Pantry) ListSelfManaged(ctx context.Context, selfManaged bool) ([]model.Pantry, error) {
	return s.pantries.ListSelfManaged(ctx, selfManaged)
}

// DeletePantry removes the pantry with the given id.
func (s *Pantry) DeletePantry(ctx context.Context, id string) error {
	if err := s.pantries.Delete(ctx, id); err != nil {
		s.logger.Error("Pantry service: failed to delete pantry",
			"id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete pantry: %w", err)
	}

	s.logger.Info("Pantry service: pantry deleted", "id", id)

	return nil
}

// GrantAccessParams contains parameters to link a user to a pantry.
type GrantAccessParams struct {
	PantryID       string
	UserID         string
	AccessLevel    string
	IsContactAgent bool
}

// GrantAccess links a user to a pantry with the given access level. Granting
// twice for the same (pantry, user) pair overwrites the previous record.
func (s *Pantry) GrantAccess(ctx context.Context, params GrantAccessParams) (model.PantryAccess, error) {
	if params.PantryID == "" || params.UserID == "" {
		return model.PantryAccess{}, fmt.Errorf("%w: pantry id and user id are required", model.ErrValidation)
	}

	level, err := model.ParseAccessLevel(params.AccessLevel)
	if err != nil {
		return model.PantryAccess{}, err
	}

	now := time.Now().UTC()
	access := model.PantryAccess{
		PantryID:       params.PantryID,
		UserID:         params.UserID,
		AccessLevel:    level,
		IsContactAgent: params.IsContactAgent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.access.Create(ctx, access)
	if err != nil {
		s.logger.Error("Pantry service: failed to grant access",
			"pantry_id", params.PantryID,
			"user_id", params.UserID,
			"error", err.Error())
		return model.PantryAccess{}, fmt.Errorf("failed to grant access: %w", err)
	}

	s.logger.Info("Pantry service: access granted",
		"pantry_id", created.PantryID,
		"user_id", created.UserID,
		"access_level", string(created.AccessLevel))

	return created, nil
}

// GetAccess returns the access record for the (pantry, user) pair.
func (s *Pantry) GetAccess(ctx context.Context, pantryID, userID string) (model.PantryAccess, error) {
	return s.access.Get(ctx, pantryID, userID)
}

// ListAccessByUser returns the pantries a user can reach.
func (s *Pantry) ListAccessByUser(ctx context.Context, userID string) ([]model.PantryAccess, error) {
	return s.access.ListByUser(ctx, userID)
}

// ListAccessByLevel returns users holding the given role for a pantry.
func (s *Pantry) ListAccessByLevel(ctx context.Context, pantryID, level string) ([]model.PantryAccess, error) {
	parsed, err := model.ParseAccessLevel(level)
	if err != nil {
		return nil, err
	}
	return s.access.ListByLevel(ctx, pantryID, parsed)
}

// ContactAgent returns the designated contact record for a pantry.
func (s *Pantry) ContactAgent(ctx context.Context, pantryID string) (model.PantryAccess, error) {
	return s.access.GetContactAgent(ctx, pantryID)
}

// RevokeAccess removes the access record for the (pantry, user) pair.
func (s *Pantry) RevokeAccess(ctx context.Context, pantryID, userID string) error {
	if err := s.access.Delete(ctx, pantryID, userID); err != nil {
		s.logger.Error("Pantry service: failed to revoke access",
			"pantry_id", pantryID,
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke access: %w", err)
	}

	s.logger.Info("Pantry service: access revoked", "pantry_id", pantryID, "user_id", userID)

	return nil
}

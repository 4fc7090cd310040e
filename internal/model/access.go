package model

import (
	"context"
	"fmt"
	"time"
)

// AccessStore defines persistence operations for pantry access records.
type AccessStore interface {
	Get(ctx context.Context, pantryID, userID string) (PantryAccess, error)
	ListByPantry(ctx context.Context, pantryID string) ([]PantryAccess, error)
	ListByUser(ctx context.Context, userID string) ([]PantryAccess, error)
	ListByLevel(ctx context.Context, pantryID string, level AccessLevel) ([]PantryAccess, error)
	GetContactAgent(ctx context.Context, pantryID string) (PantryAccess, error)
	Create(ctx context.Context, access PantryAccess) (PantryAccess, error)
	Delete(ctx context.Context, pantryID, userID string) error
}

// AccessLevel is the role a user holds for a pantry. Closed set: unknown
// codes must fail to parse.
type AccessLevel string

const (
	AccessLevelAdmin   AccessLevel = "Admin"
	AccessLevelManager AccessLevel = "Manager"
	AccessLevelStaff   AccessLevel = "Staff"
	AccessLevelViewer  AccessLevel = "Viewer"
)

// ParseAccessLevel converts a stored code into an AccessLevel.
func ParseAccessLevel(code string) (AccessLevel, error) {
	switch AccessLevel(code) {
	case AccessLevelAdmin, AccessLevelManager, AccessLevelStaff, AccessLevelViewer:
		return AccessLevel(code), nil
	default:
		return "", fmt.Errorf("%w: unknown access level %q", ErrValidation, code)
	}
}

// PantryAccess links a user to a pantry. The (PantryID, UserID) pair is the
// composite identity and must be unique.
type PantryAccess struct {
	PantryID       string
	UserID         string
	AccessLevel    AccessLevel
	IsContactAgent bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

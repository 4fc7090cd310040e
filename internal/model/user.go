package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// User represents a pantry agent account. PantryID is nil until the user
// is assigned to a pantry.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PantryID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

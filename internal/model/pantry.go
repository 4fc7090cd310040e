package model

import (
	"context"
	"fmt"
	"time"
)

// PantryStore defines persistence operations for pantries.
type PantryStore interface {
	GetByID(ctx context.Context, id string) (Pantry, error)
	List(ctx context.Context) ([]Pantry, error)
	ListSelfManaged(ctx context.Context, selfManaged bool) ([]Pantry, error)
	Create(ctx context.Context, pantry Pantry) (Pantry, error)
	Delete(ctx context.Context, id string) error
}

// OptStatus is the tiered enrollment level of a pantry. It is a closed set:
// unknown codes must fail to parse, never default.
type OptStatus string

const (
	// OptStatusT1 is opted-out: no feature flags, no inventory.
	OptStatusT1 OptStatus = "T1"
	// OptStatusT2 is opted-in with feature flags but no inventory.
	OptStatusT2 OptStatus = "T2"
	// OptStatusT3 is fully opted-in with feature flags and inventory.
	OptStatusT3 OptStatus = "T3"
)

// ParseOptStatus converts a stored short-code into an OptStatus.
func ParseOptStatus(code string) (OptStatus, error) {
	switch OptStatus(code) {
	case OptStatusT1, OptStatusT2, OptStatusT3:
		return OptStatus(code), nil
	default:
		return "", fmt.Errorf("%w: unknown opt status %q", ErrValidation, code)
	}
}

// Address is the nested pantry address. Unit is nil when the street address
// has no unit number.
type Address struct {
	Street  string
	Unit    *string
	City    string
	State   string
	Zipcode string
}

// Pantry represents a food pantry enrolled in the program.
type Pantry struct {
	ID            string
	Name          string
	IsSelfManaged bool
	OptStatus     OptStatus
	Address       Address
	Phone         string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

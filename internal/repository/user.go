package repository

import (
	"context"

	"identity-server/internal/domain"
)

// UserRepository defines persistence operations for User entities.
//
// Lookups return (nil, nil) when no match exists; a non-nil error signals an
// infrastructure fault. Save assigns a fresh stable id to a user without one
// and treats a present id as an update of the existing record; it returns the
// fully materialized stored user, or (nil, nil) when persistence failed
// without a fault.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}

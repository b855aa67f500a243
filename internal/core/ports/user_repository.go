// Package ports defines the contracts between the marketplace core and its
// adapters: repositories, the unit of work, notification delivery and
// credential handling.
package ports

import (
	"context"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/user"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Add stores a new user. A taken e-mail yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail looks the user up by normalised e-mail.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

package ports

import (
	"context"

	"github.com/counterapp/counter-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The store enforces uniqueness of username and email; Create surfaces a
// violation as domain.ErrUserExists regardless of which index fired.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameOrEmail returns the first user matching either field,
	// used for the pre-emptive conflict check during signup.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	// UpdateProfile overwrites the mutable profile fields and returns the
	// updated user. Values are already merged by the service layer.
	UpdateProfile(ctx context.Context, id, email, firstName, lastName string) (*domain.User, error)
	// IncrementCounter atomically adds delta to the user's counter and
	// returns the new value.
	IncrementCounter(ctx context.Context, id string, delta int64) (int64, error)
}

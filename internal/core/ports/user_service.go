package ports

import (
	"context"

	"github.com/counterapp/counter-api/internal/core/domain"
)

// UpdateProfileInput carries the mutable profile fields. Empty values are
// treated as "not provided" and leave the stored value untouched.
type UpdateProfileInput struct {
	Email     string
	FirstName string
	LastName  string
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}

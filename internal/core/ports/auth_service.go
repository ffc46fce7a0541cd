package ports

import (
	"context"

	"github.com/counterapp/counter-api/internal/core/domain"
)

// SignupInput carries the data needed to create a new account.
type SignupInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

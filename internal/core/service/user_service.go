package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/counterapp/counter-api/internal/core/domain"
	"github.com/counterapp/counter-api/internal/core/ports"
)

// UserService implements profile reads and updates for the authenticated user.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile overwrites email, firstName and lastName with the provided
// values, skipping any that are empty after trimming. A name therefore cannot
// be cleared through this path, and no password change is possible here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := user.Email
	if v := strings.ToLower(strings.TrimSpace(input.Email)); v != "" {
		email = v
	}
	firstName := user.FirstName
	if v := strings.TrimSpace(input.FirstName); v != "" {
		firstName = v
	}
	lastName := user.LastName
	if v := strings.TrimSpace(input.LastName); v != "" {
		lastName = v
	}

	updated, err := s.repo.UpdateProfile(ctx, userID, email, firstName, lastName)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/counterapp/counter-api/internal/core/ports"
)

// CounterService implements the per-user counter. Increments go through the
// repository's atomic conditional update, so two concurrent calls for the
// same user never lose an update.
type CounterService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewCounterService(repo ports.UserRepository, log zerolog.Logger) *CounterService {
	return &CounterService{repo: repo, log: log}
}

func (s *CounterService) GetCount(ctx context.Context, userID string) (int64, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Counter, nil
}

func (s *CounterService) Increment(ctx context.Context, userID string) (int64, error) {
	count, err := s.repo.IncrementCounter(ctx, userID, 1)
	if err != nil {
		return 0, err
	}
	s.log.Debug().Str("user_id", userID).Int64("count", count).Msg("counter increased")
	return count, nil
}

// Decrement has no floor; the counter may go negative.
func (s *CounterService) Decrement(ctx context.Context, userID string) (int64, error) {
	count, err := s.repo.IncrementCounter(ctx, userID, -1)
	if err != nil {
		return 0, err
	}
	s.log.Debug().Str("user_id", userID).Int64("count", count).Msg("counter decreased")
	return count, nil
}

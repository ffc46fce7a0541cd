package ports

import "context"

// CounterService exposes the per-user counter operations. All three return
// the current value after the operation; the counter has no floor.
type CounterService interface {
	GetCount(ctx context.Context, userID string) (int64, error)
	Increment(ctx context.Context, userID string) (int64, error)
	Decrement(ctx context.Context, userID string) (int64, error)
}

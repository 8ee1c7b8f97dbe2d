package ports

import (
	"context"

	"github.com/trw5157-hue/garage/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	// Count returns the total number of registered users (seed guard).
	Count(ctx context.Context) (int64, error)
}

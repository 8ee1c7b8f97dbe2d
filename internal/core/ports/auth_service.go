package ports

import (
	"context"

	"github.com/trw5157-hue/garage/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role, fullName string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// public profile.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CurrentUser resolves a token subject to a live account. Returns
	// domain.ErrUserNotFound when the subject no longer exists.
	CurrentUser(ctx context.Context, username string) (*domain.User, error)
	ListMechanics(ctx context.Context) ([]*domain.User, error)
}

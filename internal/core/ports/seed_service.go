package ports

import "context"

// SeedResult reports what the bootstrap created.
type SeedResult struct {
	AlreadySeeded bool
	Users         int
	Jobs          int
}

// SeedService bootstraps demo data. Idempotent: a second call is a no-op.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

// SeedService bootstraps demo accounts and jobs for a fresh install. The
// guard is any existing user: once one account exists, Seed is a no-op.
type SeedService struct {
	users  ports.UserRepository
	jobs   ports.JobRepository
	logger zerolog.Logger
}

func NewSeedService(users ports.UserRepository, jobs ports.JobRepository, logger zerolog.Logger) *SeedService {
	return &SeedService{users: users, jobs: jobs, logger: logger}
}

func (s *SeedService) Seed(ctx context.Context) (*ports.SeedResult, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &ports.SeedResult{AlreadySeeded: true}, nil
	}

	users := []struct {
		username, password, role, fullName string
	}{
		{"admin", "admin123", domain.RoleManager, "Admin Manager"},
		{"rudhan", "rudhan123", domain.RoleMechanic, "Rudhan"},
		{"suresh", "suresh123", domain.RoleMechanic, "Suresh Babu"},
	}

	now := time.Now().UTC()
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if _, err := s.users.Create(ctx, &domain.User{
			ID:           uuid.NewString(),
			Username:     u.username,
			FullName:     u.fullName,
			Role:         u.role,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}); err != nil {
			return nil, err
		}
	}

	jobs := sampleJobs()
	for _, j := range jobs {
		if err := s.jobs.Insert(ctx, j); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int("users", len(users)).Int("jobs", len(jobs)).Msg("database seeded")
	return &ports.SeedResult{Users: len(users), Jobs: len(jobs)}, nil
}

func sampleJobs() []*domain.Job {
	cretaInvoice := 45000.0
	cretaDone := time.Date(2025, 10, 27, 10, 30, 0, 0, time.UTC)

	return []*domain.Job{
		{
			ID:                 uuid.NewString(),
			CustomerName:       "Arjun Menon",
			ContactNumber:      "+919876543210",
			CarBrand:           "Hyundai",
			CarModel:           "Creta 1.5 CRDi",
			Year:               2022,
			RegistrationNumber: "TN-10-AB-1234",
			VIN:                "MAXXYZZ123456789",
			Kms:                25000,
			EntryDate:          "2025-10-20",
			AssignedMechanic:   "suresh",
			WorkDescription:    "Stage 1 ECU Remap + EGR Delete + DPF Removal",
			EstimatedDelivery:  "2025-10-30",
			Status:             domain.StatusDone,
			Photos:             []string{},
			InvoiceAmount:      &cretaInvoice,
			Notes:              "Customer wants improved fuel efficiency",
			CompletionDate:     &cretaDone,
			ConfirmComplete:    true,
			CreatedAt:          time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:                 uuid.NewString(),
			CustomerName:       "Vikram Singh",
			ContactNumber:      "+919123456789",
			CarBrand:           "VW",
			CarModel:           "Polo GT TSI",
			Year:               2020,
			RegistrationNumber: "TN-09-XY-5678",
			VIN:                "WVWZZZ6RZHY123456",
			Kms:                45000,
			EntryDate:          "2025-10-25",
			AssignedMechanic:   "suresh",
			WorkDescription:    "Stage 2 Tune + Cold Air Intake + Custom Exhaust",
			EstimatedDelivery:  "2025-11-01",
			Status:             domain.StatusPending,
			Photos:             []string{},
			CreatedAt:          time.Date(2025, 10, 25, 11, 0, 0, 0, time.UTC),
		},
	}
}

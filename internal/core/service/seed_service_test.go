package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

func TestSeedService_Seed_FreshDatabase(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewSeedService(users, jobs, zerolog.Nop())

	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if result.AlreadySeeded {
		t.Fatalf("fresh database reported as already seeded")
	}
	if result.Users != 3 || result.Jobs != 2 {
		t.Fatalf("expected 3 users and 2 jobs, got %d/%d", result.Users, result.Jobs)
	}

	admin, err := users.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleManager {
		t.Fatalf("admin role = %s, want %s", admin.Role, domain.RoleManager)
	}
	if admin.PasswordHash == "admin123" {
		t.Fatalf("seed password stored unhashed")
	}

	mechanics, _ := users.ListByRole(context.Background(), domain.RoleMechanic)
	if len(mechanics) != 2 {
		t.Fatalf("expected 2 seeded mechanics, got %d", len(mechanics))
	}

	all, err := jobs.List(context.Background(), ports.JobFilter{})
	if err != nil {
		t.Fatalf("listing seeded jobs failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 seeded jobs, got %d", len(all))
	}

	var done, pending int
	for _, j := range all {
		switch j.Status {
		case domain.StatusDone:
			done++
			if j.CompletionDate == nil {
				t.Fatalf("done sample job missing completion date")
			}
			if j.InvoiceAmount == nil || *j.InvoiceAmount != 45000 {
				t.Fatalf("done sample job invoice amount = %v", j.InvoiceAmount)
			}
		case domain.StatusPending:
			pending++
		}
		if j.AssignedMechanic != "suresh" {
			t.Fatalf("sample job assigned to %s, want suresh", j.AssignedMechanic)
		}
	}
	if done != 1 || pending != 1 {
		t.Fatalf("expected one Done and one Pending sample job, got %d/%d", done, pending)
	}
}

func TestSeedService_Seed_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewSeedService(users, jobs, zerolog.Nop())

	if _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if !result.AlreadySeeded {
		t.Fatalf("expected AlreadySeeded on second call")
	}

	count, _ := users.Count(context.Background())
	if count != 3 {
		t.Fatalf("second seed must not add users, count = %d", count)
	}
	all, _ := jobs.List(context.Background(), ports.JobFilter{})
	if len(all) != 2 {
		t.Fatalf("second seed must not add jobs, got %d", len(all))
	}
}

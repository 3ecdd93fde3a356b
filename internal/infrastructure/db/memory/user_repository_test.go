package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"github.com/lendsqr/admin-dashboard/internal/core/ports"
	"github.com/lendsqr/admin-dashboard/internal/infrastructure/dataset"
)

// fixedDataset builds a dataset with fully controlled fields so filter
// assertions do not depend on the seeded generator.
func fixedDataset() *dataset.Dataset {
	mk := func(id int, org string, status domain.UserStatus) domain.User {
		return domain.User{
			ID:           fmt.Sprintf("%d", id),
			Organization: org,
			Username:     fmt.Sprintf("User %d", id),
			Email:        fmt.Sprintf("user%d@%s.com", id, org),
			PhoneNumber:  fmt.Sprintf("080%08d", id),
			DateJoined:   "Apr 30, 2020 10:00 AM",
			Status:       status,
			EducationAndEmployment: &domain.EducationAndEmployment{
				LoanRepayment: "₦40,000",
			},
		}
	}
	users := []domain.User{
		mk(1, "Lendsqr", domain.StatusActive),
		mk(2, "Lendsqr", domain.StatusInactive),
		mk(3, "Irorun", domain.StatusActive),
		mk(4, "Irorun", domain.StatusPending),
		mk(5, "Lendstar", domain.StatusBlacklisted),
	}
	return &dataset.Dataset{Users: users, Stats: domain.UserStats{TotalUsers: len(users)}}
}

func TestList_FilterANDSemantics(t *testing.T) {
	repo := NewUserRepository(fixedDataset())

	users, total, err := repo.List(context.Background(),
		ports.UserFilters{Organization: "Lendsqr", Status: "Active"},
		ports.PageParams{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected total 1 matching both constraints, got %d", total)
	}
	if len(users) != 1 || users[0].ID != "1" {
		t.Fatalf("unexpected result: %+v", users)
	}
}

func TestList_SubstringCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(fixedDataset())

	users, total, err := repo.List(context.Background(),
		ports.UserFilters{Organization: "lend"}, ports.PageParams{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	// "lend" matches Lendsqr (2) and Lendstar (1).
	if total != 3 || len(users) != 3 {
		t.Fatalf("expected 3 substring matches, got total=%d len=%d", total, len(users))
	}
}

func TestList_NoFilterReturnsAll(t *testing.T) {
	repo := NewUserRepository(fixedDataset())
	users, total, err := repo.List(context.Background(), ports.UserFilters{}, ports.PageParams{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(users) != 5 {
		t.Fatalf("expected all 5 users, got total=%d len=%d", total, len(users))
	}
}

func TestList_PaginationMath(t *testing.T) {
	users := make([]domain.User, 0, 95)
	for i := 1; i <= 95; i++ {
		users = append(users, domain.User{ID: fmt.Sprintf("%d", i), Status: domain.StatusActive})
	}
	repo := NewUserRepository(&dataset.Dataset{Users: users})

	page, total, err := repo.List(context.Background(), ports.UserFilters{},
		ports.PageParams{Page: 10, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 95 {
		t.Fatalf("expected total 95, got %d", total)
	}
	if len(page) != 5 {
		t.Fatalf("expected 5 records on the last page, got %d", len(page))
	}
	if got := ports.PageCount(total, 10); got != 10 {
		t.Fatalf("expected 10 pages, got %d", got)
	}
	if page[0].ID != "91" {
		t.Fatalf("expected page to start at user 91, got %s", page[0].ID)
	}
}

func TestList_PageBeyondEnd(t *testing.T) {
	repo := NewUserRepository(fixedDataset())
	page, total, err := repo.List(context.Background(), ports.UserFilters{},
		ports.PageParams{Page: 99, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(page) != 0 {
		t.Fatalf("expected empty page past the end, got total=%d len=%d", total, len(page))
	}
}

func TestUpdateStatus_RoundTrip(t *testing.T) {
	repo := NewUserRepository(fixedDataset())
	ctx := context.Background()

	updated, err := repo.UpdateStatus(ctx, "1", domain.StatusBlacklisted)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.StatusBlacklisted {
		t.Fatalf("expected returned record to carry the new status, got %s", updated.Status)
	}

	got, err := repo.FindByID(ctx, "1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.Status != domain.StatusBlacklisted {
		t.Fatalf("subsequent read must see the mutation, got %s", got.Status)
	}

	// Idempotent under repetition, and reversible.
	if _, err := repo.UpdateStatus(ctx, "1", domain.StatusBlacklisted); err != nil {
		t.Fatalf("repeat update failed: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "1", domain.StatusActive); err != nil {
		t.Fatalf("flip back failed: %v", err)
	}
	got, _ = repo.FindByID(ctx, "1")
	if got.Status != domain.StatusActive {
		t.Fatalf("expected Active after flip back, got %s", got.Status)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := NewUserRepository(fixedDataset())
	if _, err := repo.UpdateStatus(context.Background(), "999", domain.StatusActive); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindByID_ReturnsIsolatedCopy(t *testing.T) {
	repo := NewUserRepository(fixedDataset())
	ctx := context.Background()

	a, _ := repo.FindByID(ctx, "1")
	a.Status = domain.StatusPending
	a.EducationAndEmployment.LoanRepayment = "tampered"

	b, _ := repo.FindByID(ctx, "1")
	if b.Status == domain.StatusPending || b.EducationAndEmployment.LoanRepayment == "tampered" {
		t.Fatalf("mutating a returned record leaked into the repository")
	}
}

func TestStats_FrozenAtSeedTime(t *testing.T) {
	ds := fixedDataset()
	ds.Stats = domain.UserStats{TotalUsers: 5, ActiveUsers: 2, UsersWithLoans: 5, UsersWithSavings: 3}
	repo := NewUserRepository(ds)
	ctx := context.Background()

	if _, err := repo.UpdateStatus(ctx, "3", domain.StatusBlacklisted); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	// The simulated backend keeps serving seed-time counts after mutations.
	if stats.ActiveUsers != 2 {
		t.Fatalf("expected seed-time active count 2, got %d", stats.ActiveUsers)
	}
}

func TestCredentialRepository_Lookup(t *testing.T) {
	repo := NewCredentialRepository([]domain.Credential{
		{User: domain.AuthUser{ID: "op-1", Email: "Admin@lendsqr.com"}, PasswordHash: "h"},
	})
	ctx := context.Background()

	c, err := repo.FindByEmail(ctx, "admin@LENDSQR.com")
	if err != nil {
		t.Fatalf("expected case-insensitive email match: %v", err)
	}
	if c.User.ID != "op-1" {
		t.Fatalf("unexpected credential: %+v", c)
	}

	if _, err := repo.FindByEmail(ctx, "nobody@x.com"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuditRepository_InsertAndList(t *testing.T) {
	repo := NewAuditRepository()
	ctx := context.Background()

	_ = repo.Insert(ctx, domain.StatusChange{UserID: "1", From: domain.StatusActive, To: domain.StatusBlacklisted})
	_ = repo.Insert(ctx, domain.StatusChange{UserID: "2", From: domain.StatusPending, To: domain.StatusActive})
	_ = repo.Insert(ctx, domain.StatusChange{UserID: "1", From: domain.StatusBlacklisted, To: domain.StatusActive})

	got, err := repo.ListByUser(ctx, "1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 changes for user 1, got %d", len(got))
	}
	if got[0].To != domain.StatusBlacklisted || got[1].To != domain.StatusActive {
		t.Fatalf("expected insertion order preserved: %+v", got)
	}
}

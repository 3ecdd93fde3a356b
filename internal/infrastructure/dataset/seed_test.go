package dataset

import (
	"testing"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(50, 42)
	b := Generate(50, 42)

	if len(a.Users) != 50 || len(b.Users) != 50 {
		t.Fatalf("expected 50 users, got %d and %d", len(a.Users), len(b.Users))
	}
	for i := range a.Users {
		if a.Users[i].Email != b.Users[i].Email || a.Users[i].Status != b.Users[i].Status {
			t.Fatalf("same seed produced different users at index %d", i)
		}
	}
}

func TestGenerate_UsersAreComplete(t *testing.T) {
	d := Generate(30, 7)
	for _, u := range d.Users {
		if u.ID == "" || u.Organization == "" || u.Username == "" || u.Email == "" {
			t.Fatalf("incomplete core fields: %+v", u)
		}
		if !u.Status.Valid() {
			t.Fatalf("user %s has invalid status %q", u.ID, u.Status)
		}
		if u.PersonalInfo == nil || u.EducationAndEmployment == nil || u.Socials == nil || u.Guarantor == nil {
			t.Fatalf("user %s missing profile sections", u.ID)
		}
		if len(u.PersonalInfo.BVN) != 11 {
			t.Fatalf("user %s has malformed BVN %q", u.ID, u.PersonalInfo.BVN)
		}
	}
}

func TestGenerate_StatsMatchDataset(t *testing.T) {
	d := Generate(100, 99)

	active, withLoans := 0, 0
	for _, u := range d.Users {
		if u.Status == domain.StatusActive {
			active++
		}
		if u.EducationAndEmployment.LoanRepayment != "₦0" {
			withLoans++
		}
	}

	if d.Stats.TotalUsers != 100 {
		t.Fatalf("expected total 100, got %d", d.Stats.TotalUsers)
	}
	if d.Stats.ActiveUsers != active {
		t.Fatalf("active stat %d does not match dataset %d", d.Stats.ActiveUsers, active)
	}
	if d.Stats.UsersWithLoans != withLoans {
		t.Fatalf("loans stat %d does not match dataset %d", d.Stats.UsersWithLoans, withLoans)
	}
	if d.Stats.UsersWithSavings != 70 {
		t.Fatalf("expected 70%% with savings, got %d", d.Stats.UsersWithSavings)
	}
}

func TestGenerate_OperatorCredentials(t *testing.T) {
	d := Generate(1, 1)
	if len(d.Credentials) == 0 {
		t.Fatalf("expected seeded operator accounts")
	}
	admin := d.Credentials[0]
	if admin.User.Email != "admin@lendsqr.com" || admin.User.Role != "admin" {
		t.Fatalf("unexpected admin account: %+v", admin.User)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("admin hash does not verify: %v", err)
	}
}

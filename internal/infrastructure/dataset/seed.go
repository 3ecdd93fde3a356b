// Package dataset generates the deterministic borrower dataset the
// simulated backend serves. The same seed always yields the same users, so
// tests and local runs are reproducible.
package dataset

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lendsqr/admin-dashboard/internal/core/domain"
)

var firstNames = []string{
	"Adedeji", "Grace", "Debby", "Tosin", "Kemi", "Tunde", "Folake", "Seun",
	"Bola", "Yemi", "Funmi", "Dayo", "Tayo", "Sola", "Wale", "Kola", "Femi",
	"Tola", "Gbenga", "Lanre", "Bukola", "Shade", "Ronke", "Bisi", "Titi",
	"Lola", "Nike", "Joke", "Sade", "Remi", "Kunle", "Dele", "Jide", "Ola",
	"Mide", "Tope", "Dupe", "Yinka", "Biodun", "Adebayo",
}

var lastNames = []string{
	"Adebayo", "Ogana", "Effiom", "Dokunmu", "Okafor", "Emeka", "Chukwu",
	"Okoro", "Nwankwo", "Okonkwo", "Adeyemi", "Adebola", "Adeyinka", "Adeola",
	"Adebisi", "Adeleke", "Adeniyi", "Adekunle", "Babatunde", "Oluwaseun",
	"Olumide", "Oluwakemi", "Ibrahim", "Mohammed", "Abdullahi", "Usman",
	"Aliyu", "Musa", "Sani", "Garba", "Bello", "Yakubu",
}

var organizations = []string{
	"Lendsqr", "Irorun", "Lendstar", "Paystack", "Flutterwave", "Kuda",
	"PiggyVest", "Cowrywise",
}

var statuses = []domain.UserStatus{
	domain.StatusActive, domain.StatusInactive, domain.StatusPending, domain.StatusBlacklisted,
}

var genders = []string{"Male", "Female"}
var maritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}
var childrenOptions = []string{"None", "1", "2", "3", "4", "5+"}
var residenceTypes = []string{
	"Parent's Apartment", "Own Apartment", "Rented Apartment", "Own House", "Rented House",
}
var educationLevels = []string{"Primary", "Secondary", "B.Sc", "M.Sc", "Ph.D"}
var employmentStatuses = []string{"Employed", "Self-employed", "Unemployed"}
var employmentSectors = []string{"FinTech", "Agriculture", "Health", "Education", "Retail", "Logistics"}
var relationships = []string{"Sister", "Brother", "Parent", "Spouse", "Cousin", "Friend"}

// Dataset is the full simulated-backend state: borrowers, precomputed
// aggregate stats, and back-office operator credentials.
type Dataset struct {
	Users       []domain.User
	Stats       domain.UserStats
	Credentials []domain.Credential
}

// Generate builds n borrowers plus the default operator accounts from the
// given seed. Stats are computed once over the generated set: the simulated
// backend intentionally keeps serving these even after mutations, mirroring
// how the dashboard's stats cards lag behind status changes.
func Generate(n int, seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))

	users := make([]domain.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, generateUser(rng, i))
	}

	active, withLoans := 0, 0
	for _, u := range users {
		if u.Status == domain.StatusActive {
			active++
		}
		if u.EducationAndEmployment.LoanRepayment != "₦0" {
			withLoans++
		}
	}

	return &Dataset{
		Users: users,
		Stats: domain.UserStats{
			TotalUsers:       n,
			ActiveUsers:      active,
			UsersWithLoans:   withLoans,
			UsersWithSavings: n * 7 / 10,
		},
		Credentials: operatorAccounts(),
	}
}

func generateUser(rng *rand.Rand, id int) domain.User {
	first := pick(rng, firstNames)
	last := pick(rng, lastNames)
	fullName := first + " " + last
	org := pick(rng, organizations)
	email := fmt.Sprintf("%s.%s@%s.com", strings.ToLower(first), strings.ToLower(last), strings.ToLower(org))
	phone := phoneNumber(rng)
	employment := pick(rng, employmentStatuses)

	officeEmail := email
	duration := fmt.Sprintf("%d years", 1+rng.Intn(10))
	if employment == "Unemployed" {
		officeEmail = "N/A"
		duration = "N/A"
	}

	handle := "@" + strings.ToLower(first) + "_" + strings.ToLower(last)
	guarantorFirst := pick(rng, firstNames)
	guarantorLast := pick(rng, lastNames)

	return domain.User{
		ID:           fmt.Sprintf("%d", id),
		Organization: org,
		Username:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		DateJoined:   dateJoined(rng),
		Status:       statuses[rng.Intn(len(statuses))],
		PersonalInfo: &domain.PersonalInfo{
			FullName:        fullName,
			BVN:             digits(rng, 11),
			Gender:          pick(rng, genders),
			MaritalStatus:   pick(rng, maritalStatuses),
			Children:        pick(rng, childrenOptions),
			TypeOfResidence: pick(rng, residenceTypes),
		},
		EducationAndEmployment: &domain.EducationAndEmployment{
			LevelOfEducation:     pick(rng, educationLevels),
			EmploymentStatus:     employment,
			SectorOfEmployment:   pick(rng, employmentSectors),
			DurationOfEmployment: duration,
			OfficeEmail:          officeEmail,
			MonthlyIncome:        monthlyIncome(rng),
			LoanRepayment:        loanRepayment(rng),
		},
		Socials: &domain.Socials{
			Twitter:   handle,
			Facebook:  fullName,
			Instagram: handle,
		},
		Guarantor: &domain.Guarantor{
			FullName:     guarantorFirst + " " + guarantorLast,
			PhoneNumber:  phoneNumber(rng),
			Email:        strings.ToLower(guarantorFirst) + "@gmail.com",
			Relationship: pick(rng, relationships),
		},
	}
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func digits(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d", rng.Intn(10))
	}
	return b.String()
}

func phoneNumber(rng *rand.Rand) string {
	prefixes := []string{"070", "080", "081", "090", "091"}
	return pick(rng, prefixes) + digits(rng, 8)
}

// dateJoined renders a display-formatted join date, the shape the
// dashboard table shows (e.g. "Apr 30, 2020 10:00 AM").
func dateJoined(rng *rand.Rand) string {
	start := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	d := start.AddDate(0, 0, rng.Intn(365*4))
	d = d.Add(time.Duration(8+rng.Intn(10)) * time.Hour)
	return d.Format("Jan 2, 2006 3:04 PM")
}

func monthlyIncome(rng *rand.Rand) string {
	lo := 50 + rng.Intn(350)
	return fmt.Sprintf("₦%d,000.00 - ₦%d,000.00", lo, lo+100)
}

// loanRepayment is "₦0" for roughly a third of users; everyone else is
// actively repaying. Stats count the repaying group as "users with loans".
func loanRepayment(rng *rand.Rand) string {
	if rng.Intn(3) == 0 {
		return "₦0"
	}
	return fmt.Sprintf("₦%d,000", 5+rng.Intn(95))
}

// operatorAccounts returns the seeded back-office logins. Passwords are
// bcrypt-hashed here rather than stored precomputed so the hash cost stays
// in one place.
func operatorAccounts() []domain.Credential {
	return []domain.Credential{
		{
			User: domain.AuthUser{
				ID:        "op-1",
				Email:     "admin@lendsqr.com",
				FirstName: "Adedeji",
				LastName:  "Adebayo",
				Role:      "admin",
			},
			PasswordHash: mustHash("password123"),
		},
		{
			User: domain.AuthUser{
				ID:        "op-2",
				Email:     "ops@lendsqr.com",
				FirstName: "Grace",
				LastName:  "Effiom",
				Role:      "admin",
			},
			PasswordHash: mustHash("lendsqr2020"),
		},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic("dataset: hash password: " + err.Error())
	}
	return string(hash)
}

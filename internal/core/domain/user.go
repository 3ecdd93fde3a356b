package domain

import "errors"

// UserStatus represents the account state of a platform borrower.
type UserStatus string

const (
	StatusActive      UserStatus = "Active"
	StatusInactive    UserStatus = "Inactive"
	StatusPending     UserStatus = "Pending"
	StatusBlacklisted UserStatus = "Blacklisted"
)

// availableTransitions defines which statuses an operator may move an
// account to from its current status. A blacklisted account can only be
// reactivated; every other state can be blacklisted.
var availableTransitions = map[UserStatus][]UserStatus{
	StatusActive:      {StatusInactive, StatusBlacklisted},
	StatusInactive:    {StatusActive, StatusBlacklisted},
	StatusPending:     {StatusActive, StatusBlacklisted},
	StatusBlacklisted: {StatusActive},
}

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidStatus = errors.New("invalid user status")

// Valid reports whether s is one of the four enumerated statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending, StatusBlacklisted:
		return true
	}
	return false
}

// AvailableTransitions returns the statuses an operator may move an account
// to from s. The result is a copy; callers may mutate it freely.
func AvailableTransitions(s UserStatus) []UserStatus {
	next := availableTransitions[s]
	out := make([]UserStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s UserStatus) CanTransitionTo(next UserStatus) bool {
	for _, allowed := range availableTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PersonalInfo is the personal-details section of a user profile.
type PersonalInfo struct {
	FullName        string `json:"full_name" bson:"full_name"`
	BVN             string `json:"bvn" bson:"bvn"`
	Gender          string `json:"gender" bson:"gender"`
	MaritalStatus   string `json:"marital_status" bson:"marital_status"`
	Children        string `json:"children" bson:"children"`
	TypeOfResidence string `json:"type_of_residence" bson:"type_of_residence"`
}

// EducationAndEmployment is the education/employment section of a user profile.
type EducationAndEmployment struct {
	LevelOfEducation     string `json:"level_of_education" bson:"level_of_education"`
	EmploymentStatus     string `json:"employment_status" bson:"employment_status"`
	SectorOfEmployment   string `json:"sector_of_employment" bson:"sector_of_employment"`
	DurationOfEmployment string `json:"duration_of_employment" bson:"duration_of_employment"`
	OfficeEmail          string `json:"office_email" bson:"office_email"`
	MonthlyIncome        string `json:"monthly_income" bson:"monthly_income"`
	LoanRepayment        string `json:"loan_repayment" bson:"loan_repayment"`
}

// Socials holds the social-media handles of a user.
type Socials struct {
	Twitter   string `json:"twitter" bson:"twitter"`
	Facebook  string `json:"facebook" bson:"facebook"`
	Instagram string `json:"instagram" bson:"instagram"`
}

// Guarantor is the loan guarantor named by a user.
type Guarantor struct {
	FullName     string `json:"full_name" bson:"full_name"`
	PhoneNumber  string `json:"phone_number" bson:"phone_number"`
	Email        string `json:"email" bson:"email"`
	Relationship string `json:"relationship" bson:"relationship"`
}

// User is a platform customer/borrower as seen by the back office.
// The profile sections are optional: list endpoints carry the core fields
// only, the detail endpoint fills in the rest.
type User struct {
	ID           string     `json:"id" bson:"_id"`
	Organization string     `json:"organization" bson:"organization"`
	Username     string     `json:"username" bson:"username"`
	Email        string     `json:"email" bson:"email"`
	PhoneNumber  string     `json:"phone_number" bson:"phone_number"`
	DateJoined   string     `json:"date_joined" bson:"date_joined"`
	Status       UserStatus `json:"status" bson:"status"`

	PersonalInfo           *PersonalInfo           `json:"personal_info,omitempty" bson:"personal_info,omitempty"`
	EducationAndEmployment *EducationAndEmployment `json:"education_and_employment,omitempty" bson:"education_and_employment,omitempty"`
	Socials                *Socials                `json:"socials,omitempty" bson:"socials,omitempty"`
	Guarantor              *Guarantor              `json:"guarantor,omitempty" bson:"guarantor,omitempty"`
}

// UserStats are the aggregate counts shown on the dashboard cards.
type UserStats struct {
	TotalUsers       int `json:"total_users" bson:"total_users"`
	ActiveUsers      int `json:"active_users" bson:"active_users"`
	UsersWithLoans   int `json:"users_with_loans" bson:"users_with_loans"`
	UsersWithSavings int `json:"users_with_savings" bson:"users_with_savings"`
}

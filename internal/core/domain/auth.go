package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNoSession = errors.New("no active session")

// AuthUser is the back-office operator signed in to the dashboard.
// Distinct from User, which is a platform customer being administered.
type AuthUser struct {
	ID        string `json:"id" bson:"_id"`
	Email     string `json:"email" bson:"email"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Role      string `json:"role" bson:"role"`
	Avatar    string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// Session is an authenticated principal plus its opaque bearer token.
// A session is written and cleared as a unit: a token without a user, or
// the reverse, is treated as no session at all.
type Session struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

// Credential pairs an operator account with its password hash. Only the
// credential repository ever sees the hash; it never travels in a Session.
type Credential struct {
	User         AuthUser
	PasswordHash string
}

package domain

import "time"

// StatusChange records a single status mutation applied to a user account,
// kept as an append-only audit trail.
type StatusChange struct {
	UserID     string     `json:"user_id" bson:"user_id"`
	From       UserStatus `json:"from" bson:"from"`
	To         UserStatus `json:"to" bson:"to"`
	Actor      string     `json:"actor,omitempty" bson:"actor,omitempty"`
	OccurredAt time.Time  `json:"occurred_at" bson:"occurred_at"`
}

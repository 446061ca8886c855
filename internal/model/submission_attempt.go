package model

import "time"

const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// SubmissionAttempt records one call to the user service.
type SubmissionAttempt struct {
	ID        int       `db:"id" json:"id"`
	AdminID   int       `db:"admin_id" json:"admin_id"`
	FormID    string    `db:"form_id" json:"form_id"`
	Email     string    `db:"email" json:"email"`
	Outcome   string    `db:"outcome" json:"outcome"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

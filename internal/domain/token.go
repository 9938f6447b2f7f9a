package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationToken is an out-of-band secret proving control of an email
// address. It references its account by id only and is unusable once past
// ExpiresAt. Several live tokens may exist for one account at a time.
type VerificationToken struct {
	Id        uuid.UUID
	AccountId uuid.UUID
	Value     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ConfirmationStatus reports the outcome of a confirm or resend that did not
// fail. "Already verified" is an idempotent no-op, not an error.
type ConfirmationStatus string

const (
	StatusVerified        ConfirmationStatus = "verified"
	StatusAlreadyVerified ConfirmationStatus = "already_verified"
	StatusLinkSent        ConfirmationStatus = "link_sent"
)

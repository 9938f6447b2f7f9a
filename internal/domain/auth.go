package domain

import "github.com/google/uuid"

// TokenClaims is the identity carried by a bearer token: account id plus
// display name, nothing else.
type TokenClaims struct {
	AccountId uuid.UUID
	Name      string
}

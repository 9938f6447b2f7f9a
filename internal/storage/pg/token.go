package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ryuk156/backend-AOL/internal/domain"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
)

// SaveToken persists a verification token. Values are not unique-constrained;
// collision resistance comes from the 128-bit random draw.
func (s *Storage) SaveToken(token domain.VerificationToken) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO verification_tokens (id, account_id, value, created_at, expires_at)
			VALUES ($1, $2, $3, $4, $5)`,
			token.Id, token.AccountId, token.Value, token.CreatedAt, token.ExpiresAt)
		if err != nil {
			return fmt.Errorf("failed to insert verification token: %w", err)
		}
		return nil
	})
}

// TokenByValue resolves an unexpired token by its value. An expired token is
// indistinguishable from an unknown one: both report ErrTokenNotFound, so the
// background purge cadence is never load-bearing.
func (s *Storage) TokenByValue(value string) (domain.VerificationToken, error) {
	var token domain.VerificationToken
	err := s.db.QueryRow(`
		SELECT id, account_id, value, created_at, expires_at
		FROM verification_tokens
		WHERE value = $1 AND expires_at > now()`,
		value).Scan(&token.Id, &token.AccountId, &token.Value, &token.CreatedAt, &token.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.VerificationToken{}, internal_errors.ErrTokenNotFound
		}
		return domain.VerificationToken{}, fmt.Errorf("failed to query verification token: %w", err)
	}
	return token, nil
}

// DeleteExpiredTokens removes tokens past their expiry and reports how many
// were purged.
func (s *Storage) DeleteExpiredTokens() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var deleted int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM verification_tokens WHERE expires_at <= now()")
		if err != nil {
			return fmt.Errorf("failed to delete expired tokens: %w", err)
		}
		deleted, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to count deleted tokens: %w", err)
		}
		return nil
	})
	return deleted, err
}

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryuk156/backend-AOL/internal/domain"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
	"github.com/ryuk156/backend-AOL/internal/utils"
)

type VerificationService interface {
	Issue(acc domain.Account) error
	Confirm(email, tokenValue string) (domain.ConfirmationStatus, error)
	Resend(variant domain.Variant, email string) (domain.ConfirmationStatus, error)
}

type TokenStorage interface {
	SaveToken(token domain.VerificationToken) error
	TokenByValue(value string) (domain.VerificationToken, error)
	DeleteExpiredTokens() (int64, error)
}

type EmailSender interface {
	Send(recipientEmail, recipientName, subject, body string) error
	IsCorrect(email string) error
}

type Verification struct {
	accounts AccountStorage
	tokens   TokenStorage
	email    EmailSender
	baseURL  string
	tokenTTL time.Duration
}

func NewVerification(accounts AccountStorage, tokens TokenStorage, email EmailSender, baseURL string, tokenTTL time.Duration) *Verification {
	return &Verification{
		accounts: accounts,
		tokens:   tokens,
		email:    email,
		baseURL:  strings.TrimRight(baseURL, "/"),
		tokenTTL: tokenTTL,
	}
}

// Issue persists a fresh verification token for the account and mails the
// confirmation link. The token row is committed before the send is attempted,
// so a delivery failure leaves a usable token behind for a later resend or a
// slow mail provider retry.
func (v *Verification) Issue(acc domain.Account) error {
	now := time.Now().UTC()
	token := domain.VerificationToken{
		Id:        uuid.New(),
		AccountId: acc.Id,
		Value:     utils.GenerateTokenValue(),
		CreatedAt: now,
		ExpiresAt: now.Add(v.tokenTTL),
	}

	if err := v.tokens.SaveToken(token); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/confirmation/%s/%s", v.baseURL, acc.Email, token.Value)
	body := fmt.Sprintf(
		"Hello %s,\n\nPlease verify your account by clicking the link: \n%s\n\nThe link will expire in one day. If you did not request this, please ignore this email.\n\nThank You!\n",
		acc.Name, link,
	)

	return v.email.Send(acc.Email, acc.Name, "Verify your email", body)
}

// Confirm redeems a verification link. Confirming an already-verified account
// is a no-op reported as such; the token itself is left in place and simply
// ages out, which is harmless exactly because of that idempotence.
func (v *Verification) Confirm(email, tokenValue string) (domain.ConfirmationStatus, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	token, err := v.tokens.TokenByValue(tokenValue)
	if err != nil {
		return "", err
	}

	acc, err := v.accounts.AccountById(token.AccountId)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			// account is gone, the link can never be valid again
			return "", internal_errors.ErrAccountMismatch
		}
		return "", err
	}

	if !strings.EqualFold(acc.Email, email) {
		return "", internal_errors.ErrAccountMismatch
	}

	if acc.IsVerified {
		return domain.StatusAlreadyVerified, nil
	}

	if err := v.accounts.SetVerified(acc.Id); err != nil {
		return "", err
	}
	return domain.StatusVerified, nil
}

// Resend issues a brand-new token for an unverified account. Earlier tokens
// stay live until they expire; any of them can still complete confirmation.
func (v *Verification) Resend(variant domain.Variant, email string) (domain.ConfirmationStatus, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := v.email.IsCorrect(email); err != nil {
		return "", err
	}

	acc, err := v.accounts.Account(variant, email)
	if err != nil {
		return "", err
	}

	if acc.IsVerified {
		return domain.StatusAlreadyVerified, nil
	}

	if err := v.Issue(acc); err != nil {
		return "", err
	}
	return domain.StatusLinkSent, nil
}

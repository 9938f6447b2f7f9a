package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ryuk156/backend-AOL/internal/domain"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
)

// --- Mocks ---

type MockAccountStorage struct {
	SaveAccountFunc func(acc domain.Account) (domain.Account, error)
	AccountFunc     func(variant domain.Variant, email string) (domain.Account, error)
	AccountByIdFunc func(id uuid.UUID) (domain.Account, error)
	SetVerifiedFunc func(id uuid.UUID) error
}

func (m *MockAccountStorage) SaveAccount(acc domain.Account) (domain.Account, error) {
	if m.SaveAccountFunc != nil {
		return m.SaveAccountFunc(acc)
	}
	acc.Id = uuid.New()
	return acc, nil
}

func (m *MockAccountStorage) Account(variant domain.Variant, email string) (domain.Account, error) {
	if m.AccountFunc != nil {
		return m.AccountFunc(variant, email)
	}
	return domain.Account{}, internal_errors.ErrAccountNotFound
}

func (m *MockAccountStorage) AccountById(id uuid.UUID) (domain.Account, error) {
	if m.AccountByIdFunc != nil {
		return m.AccountByIdFunc(id)
	}
	return domain.Account{}, internal_errors.ErrAccountNotFound
}

func (m *MockAccountStorage) SetVerified(id uuid.UUID) error {
	if m.SetVerifiedFunc != nil {
		return m.SetVerifiedFunc(id)
	}
	return nil
}

type MockTokenStorage struct {
	SaveTokenFunc           func(token domain.VerificationToken) error
	TokenByValueFunc        func(value string) (domain.VerificationToken, error)
	DeleteExpiredTokensFunc func() (int64, error)
}

func (m *MockTokenStorage) SaveToken(token domain.VerificationToken) error {
	if m.SaveTokenFunc != nil {
		return m.SaveTokenFunc(token)
	}
	return nil
}

func (m *MockTokenStorage) TokenByValue(value string) (domain.VerificationToken, error) {
	if m.TokenByValueFunc != nil {
		return m.TokenByValueFunc(value)
	}
	return domain.VerificationToken{}, internal_errors.ErrTokenNotFound
}

func (m *MockTokenStorage) DeleteExpiredTokens() (int64, error) {
	if m.DeleteExpiredTokensFunc != nil {
		return m.DeleteExpiredTokensFunc()
	}
	return 0, nil
}

type MockEmail struct {
	SendFunc      func(recipientEmail, recipientName, subject, body string) error
	IsCorrectFunc func(email string) error
}

func (m *MockEmail) Send(recipientEmail, recipientName, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(recipientEmail, recipientName, subject, body)
	}
	return nil
}

func (m *MockEmail) IsCorrect(email string) error {
	if m.IsCorrectFunc != nil {
		return m.IsCorrectFunc(email)
	}
	if !strings.Contains(email, "@") {
		return errors.New("invalid email format")
	}
	return nil
}

type MockJwt struct {
	NewTokenFunc func(acc domain.Account) (string, error)
}

func (m *MockJwt) NewToken(acc domain.Account) (string, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(acc)
	}
	return "test_token", nil
}

type MockIssuer struct {
	IssueFunc func(acc domain.Account) error
}

func (m *MockIssuer) Issue(acc domain.Account) error {
	if m.IssueFunc != nil {
		return m.IssueFunc(acc)
	}
	return nil
}

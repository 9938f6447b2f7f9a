package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ryuk156/backend-AOL/internal/domain"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
	"github.com/ryuk156/backend-AOL/internal/logger"
	"github.com/ryuk156/backend-AOL/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

type CredentialService interface {
	Register(variant domain.Variant, data RegistrationData) (domain.Account, error)
	Login(variant domain.Variant, email, password string) (string, error)
}

type AccountStorage interface {
	SaveAccount(acc domain.Account) (domain.Account, error)
	Account(variant domain.Variant, email string) (domain.Account, error)
	AccountById(id uuid.UUID) (domain.Account, error)
	SetVerified(id uuid.UUID) error
}

type Jwt interface {
	NewToken(acc domain.Account) (string, error)
}

type EmailChecker interface {
	IsCorrect(email string) error
}

// VerificationIssuer is the slice of the verification service registration
// needs: issuing the first token for a fresh account.
type VerificationIssuer interface {
	Issue(acc domain.Account) error
}

// RegistrationData carries everything an applicant submits. Variant-specific
// fields are validated according to the requested variant and ignored for the
// other one.
type RegistrationData struct {
	Name            string
	Email           string
	Password        string
	WhatsAppNumber  string
	AlternateNumber string

	// teacher applicants
	IdImage            []byte
	IdImageContentType string
	IdNumber           string
	MentorName         string
	MentorMobileNumber string

	// volunteer applicants
	TeacherReferenceContact string
	TeacherName             string
}

type Credential struct {
	storage      AccountStorage
	verification VerificationIssuer
	email        EmailChecker
	jwt          Jwt
}

func NewCredential(storage AccountStorage, verification VerificationIssuer, email EmailChecker, jwt Jwt) *Credential {
	return &Credential{
		storage:      storage,
		verification: verification,
		email:        email,
		jwt:          jwt,
	}
}

// Register creates an unverified account and kicks off email verification.
// The account insert either fully succeeds or surfaces a typed failure before
// any token work happens; a failure to issue or deliver the verification mail
// is returned as a delivery error NEXT TO the persisted account, so the
// caller can still treat registration as done and point the user at resend.
func (c *Credential) Register(variant domain.Variant, data RegistrationData) (domain.Account, error) {
	data.Email = strings.ToLower(strings.TrimSpace(data.Email))
	data.Name = validation.SanitizeName(data.Name)

	if err := c.validateRegistration(variant, data); err != nil {
		return domain.Account{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.Account{}, err
	}

	acc := domain.Account{
		Variant:         variant,
		Name:            data.Name,
		Email:           data.Email,
		PasswordHash:    string(passHash),
		WhatsAppNumber:  data.WhatsAppNumber,
		AlternateNumber: data.AlternateNumber,
	}
	switch variant {
	case domain.VariantTeacher:
		acc.Teacher = &domain.TeacherProfile{
			IdImage:            data.IdImage,
			IdImageContentType: data.IdImageContentType,
			IdNumber:           data.IdNumber,
			MentorName:         validation.SanitizeName(data.MentorName),
			MentorMobileNumber: data.MentorMobileNumber,
		}
	case domain.VariantVolunteer:
		acc.Volunteer = &domain.VolunteerProfile{
			TeacherReferenceContact: data.TeacherReferenceContact,
			TeacherName:             validation.SanitizeName(data.TeacherName),
		}
	}

	saved, err := c.storage.SaveAccount(acc)
	if err != nil {
		return domain.Account{}, err
	}

	if err := c.verification.Issue(saved); err != nil {
		if internal_errors.IsDelivery(err) {
			return saved, err
		}
		logger.Log.Error("failed to issue verification token after registration", "account_id", saved.Id, "error", err)
		return saved, fmt.Errorf("%w: %v", internal_errors.ErrDelivery, err)
	}

	return saved, nil
}

// Login checks credentials and returns a bearer token. An unverified account
// with the correct password reports the verification problem, never a
// credential one.
func (c *Credential) Login(variant domain.Variant, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := c.email.IsCorrect(email); err != nil {
		return "", err
	}

	acc, err := c.storage.Account(variant, email)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		logger.Log.Debug("password verification failed", "account_id", acc.Id)
		return "", internal_errors.ErrInvalidCredentials
	}

	if !acc.IsVerified {
		return "", internal_errors.ErrNotVerified
	}

	token, err := c.jwt.NewToken(acc)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "account_id", acc.Id, "error", err)
		return "", err
	}

	return token, nil
}

func (c *Credential) validateRegistration(variant domain.Variant, data RegistrationData) error {
	if !variant.Valid() {
		return internal_errors.Validation("unknown account kind")
	}
	if data.Name == "" {
		return internal_errors.Validation("name is required")
	}
	if err := c.email.IsCorrect(data.Email); err != nil {
		return err
	}
	if len(data.Password) < 6 {
		return internal_errors.Validation("password must be at least 6 characters")
	}
	if data.WhatsAppNumber == "" {
		return internal_errors.Validation("whatsapp number is required")
	}

	switch variant {
	case domain.VariantTeacher:
		if data.MentorName == "" {
			return internal_errors.Validation("your teacher name is required")
		}
		if data.MentorMobileNumber == "" {
			return internal_errors.Validation("your teacher mobile number is required")
		}
	case domain.VariantVolunteer:
		if data.TeacherReferenceContact == "" {
			return internal_errors.Validation("teacher reference contact is required")
		}
	}
	return nil
}

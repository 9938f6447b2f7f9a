package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ryuk156/backend-AOL/internal/domain"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
)

const accountColumns = `id, variant, name, email, password_hash, whatsapp_number, alternate_number,
	id_image, id_image_content_type, id_number, mentor_name, mentor_mobile_number,
	teacher_reference_contact, teacher_name, is_verified, created_at`

// SaveAccount inserts a new account. Email uniqueness per variant is enforced
// by the accounts_variant_email_key constraint, so a losing concurrent writer
// surfaces ErrEmailTaken instead of a second row.
func (s *Storage) SaveAccount(acc domain.Account) (domain.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var saved domain.Account
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveAccount(tx, acc)
		return err
	})
	return saved, err
}

// Account fetches a single account by variant and email.
func (s *Storage) Account(variant domain.Variant, email string) (domain.Account, error) {
	return s.account(s.db, "variant = $1 AND email = $2", variant, email)
}

// AccountById fetches a single account by id, across variants.
func (s *Storage) AccountById(id uuid.UUID) (domain.Account, error) {
	return s.account(s.db, "id = $1", id)
}

// SetVerified marks an account's email as proven. Setting it again is
// harmless; the flag never goes back to false.
func (s *Storage) SetVerified(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.setVerified(tx, id)
	})
}

func (s *Storage) saveAccount(q Querier, acc domain.Account) (domain.Account, error) {
	if acc.Id == uuid.Nil {
		acc.Id = uuid.New()
	}

	var idImage []byte
	var idImageContentType, idNumber, mentorName, mentorMobileNumber sql.NullString
	if acc.Teacher != nil {
		idImage = acc.Teacher.IdImage
		idImageContentType = nullString(acc.Teacher.IdImageContentType)
		idNumber = nullString(acc.Teacher.IdNumber)
		mentorName = nullString(acc.Teacher.MentorName)
		mentorMobileNumber = nullString(acc.Teacher.MentorMobileNumber)
	}
	var teacherReferenceContact, teacherName sql.NullString
	if acc.Volunteer != nil {
		teacherReferenceContact = nullString(acc.Volunteer.TeacherReferenceContact)
		teacherName = nullString(acc.Volunteer.TeacherName)
	}

	err := q.QueryRow(`
		INSERT INTO accounts (id, variant, name, email, password_hash, whatsapp_number, alternate_number,
			id_image, id_image_content_type, id_number, mentor_name, mentor_mobile_number,
			teacher_reference_contact, teacher_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING is_verified, created_at`,
		acc.Id, acc.Variant, acc.Name, acc.Email, acc.PasswordHash, acc.WhatsAppNumber, nullString(acc.AlternateNumber),
		idImage, idImageContentType, idNumber, mentorName, mentorMobileNumber,
		teacherReferenceContact, teacherName,
	).Scan(&acc.IsVerified, &acc.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.Account{}, internal_errors.ErrEmailTaken
		}
		return domain.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}
	return acc, nil
}

func (s *Storage) account(q Querier, where string, args ...interface{}) (domain.Account, error) {
	var acc domain.Account
	var alternateNumber sql.NullString
	var idImage []byte
	var idImageContentType, idNumber, mentorName, mentorMobileNumber sql.NullString
	var teacherReferenceContact, teacherName sql.NullString

	err := q.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE "+where, args...).Scan(
		&acc.Id, &acc.Variant, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.WhatsAppNumber, &alternateNumber,
		&idImage, &idImageContentType, &idNumber, &mentorName, &mentorMobileNumber,
		&teacherReferenceContact, &teacherName, &acc.IsVerified, &acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, internal_errors.ErrAccountNotFound
		}
		return domain.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	acc.AlternateNumber = alternateNumber.String
	switch acc.Variant {
	case domain.VariantTeacher:
		acc.Teacher = &domain.TeacherProfile{
			IdImage:            idImage,
			IdImageContentType: idImageContentType.String,
			IdNumber:           idNumber.String,
			MentorName:         mentorName.String,
			MentorMobileNumber: mentorMobileNumber.String,
		}
	case domain.VariantVolunteer:
		acc.Volunteer = &domain.VolunteerProfile{
			TeacherReferenceContact: teacherReferenceContact.String,
			TeacherName:             teacherName.String,
		}
	}
	return acc, nil
}

func (s *Storage) setVerified(q Querier, id uuid.UUID) error {
	result, err := q.Exec("UPDATE accounts SET is_verified = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to update verification flag: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for verification update: %w", err)
	}
	if rowsAffected == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Account not found for verification update", StatusCode: http.StatusNotFound}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Variant distinguishes the two account kinds sharing one lifecycle.
type Variant string

const (
	VariantTeacher   Variant = "teacher"
	VariantVolunteer Variant = "volunteer"
)

func (v Variant) Valid() bool {
	return v == VariantTeacher || v == VariantVolunteer
}

// Account is a registered teacher or volunteer. Variant-specific data lives
// in exactly one of the profile pointers, matching Variant.
type Account struct {
	Id              uuid.UUID
	Variant         Variant
	Name            string
	Email           string
	PasswordHash    string
	WhatsAppNumber  string
	AlternateNumber string
	IsVerified      bool
	CreatedAt       time.Time

	Teacher   *TeacherProfile
	Volunteer *VolunteerProfile
}

// TeacherProfile carries the identity document and the referring teacher
// contact a teacher applicant submits.
type TeacherProfile struct {
	IdImage            []byte
	IdImageContentType string
	IdNumber           string
	MentorName         string
	MentorMobileNumber string
}

// VolunteerProfile carries the sponsoring teacher reference for a volunteer.
type VolunteerProfile struct {
	TeacherReferenceContact string
	TeacherName             string
}

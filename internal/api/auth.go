package api

// Request DTOs
//
// Teacher registration arrives as multipart/form-data (identity image in the
// "image" field, JSON payload in the "json" field); everything else is plain
// JSON bodies.

type RegisterVolunteerRequest struct {
	Name                    string `json:"name" validate:"required"`
	Email                   string `json:"email" validate:"required,email"`
	Password                string `json:"password" validate:"required,min=6"`
	WhatsAppNumber          string `json:"whatsAppNumber" validate:"required"`
	AlternateNumber         string `json:"alternateNumber"`
	TeacherReferenceContact string `json:"teacherReferenceContact" validate:"required"`
	TeacherName             string `json:"teacherName"`
}

type RegisterTeacherRequest struct {
	Name                    string `json:"name" validate:"required"`
	Email                   string `json:"email" validate:"required,email"`
	Password                string `json:"password" validate:"required,min=6"`
	WhatsAppNumber          string `json:"whatsAppNumber" validate:"required"`
	AlternateNumber         string `json:"alternateNumber"`
	TeacherIdNumber         string `json:"teacherIdNumber"`
	YourTeacherName         string `json:"yourTeacherName" validate:"required"`
	YourTeacherMobileNumber string `json:"yourTeacherMobileNumber" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"msg"`
}

type MeResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

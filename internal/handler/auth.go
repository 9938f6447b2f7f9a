package handler

import (
	"fmt"
	"net/http"

	"github.com/ryuk156/backend-AOL/internal/api"
	"github.com/ryuk156/backend-AOL/internal/domain"
	internal_errors "github.com/ryuk156/backend-AOL/internal/errors"
	"github.com/ryuk156/backend-AOL/internal/middleware"
	"github.com/ryuk156/backend-AOL/internal/service"
	"github.com/ryuk156/backend-AOL/internal/utils"
	"github.com/ryuk156/backend-AOL/internal/validation"
)

// RegisterVolunteer creates a volunteer account from a JSON body and sends
// the verification email.
func (h *Handler) RegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterVolunteerRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := service.RegistrationData{
		Name:                    body.Name,
		Email:                   body.Email,
		Password:                body.Password,
		WhatsAppNumber:          body.WhatsAppNumber,
		AlternateNumber:         body.AlternateNumber,
		TeacherReferenceContact: body.TeacherReferenceContact,
		TeacherName:             body.TeacherName,
	}
	h.register(w, domain.VariantVolunteer, data)
}

// RegisterTeacher creates a teacher account from a multipart form: the JSON
// payload in the "json" field and the identity document in the "image" field.
func (h *Handler) RegisterTeacher(w http.ResponseWriter, r *http.Request) {
	// json payload plus image plus multipart framing overhead
	maxRequestSize := h.cfg.Public.MaxIdImageSizeBytes + 1<<20
	body, err := parseMultipartRegistration[api.RegisterTeacherRequest](r, maxRequestSize)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "Identity image is required", StatusCode: http.StatusBadRequest})
		return
	}
	image, contentType, err := validation.ValidateIdImage(files[0], h.cfg.Public.AllowedImageMimeTypes, h.cfg.Public.MaxIdImageSizeBytes)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := service.RegistrationData{
		Name:               body.Name,
		Email:              body.Email,
		Password:           body.Password,
		WhatsAppNumber:     body.WhatsAppNumber,
		AlternateNumber:    body.AlternateNumber,
		IdImage:            image,
		IdImageContentType: contentType,
		IdNumber:           body.TeacherIdNumber,
		MentorName:         body.YourTeacherName,
		MentorMobileNumber: body.YourTeacherMobileNumber,
	}
	h.register(w, domain.VariantTeacher, data)
}

func (h *Handler) register(w http.ResponseWriter, variant domain.Variant, data service.RegistrationData) {
	acc, err := h.credential.Register(variant, data)
	if err != nil {
		// The account exists even when the verification email could not be
		// sent. Registration succeeded; the applicant can use resend.
		if internal_errors.IsDelivery(err) {
			writeJSON(w, http.StatusCreated, api.MessageResponse{
				Message: fmt.Sprintf("Your account has been created, but we could not send the verification email to %s. Please click on resend.", acc.Email),
			})
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.MessageResponse{
		Message: fmt.Sprintf("A verification email has been sent to %s. The link will expire in one day. If you did not receive it, click on resend.", acc.Email),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	variant, err := variantFromRequest(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var creds api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, err := h.credential.Login(variant, creds.Email, creds.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{Success: true, Token: "Bearer " + token})
}

// Confirmation completes email verification from the link sent to the
// applicant. Verifying an already verified account is a no-op.
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	if _, err := variantFromRequest(r); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	email, err := pathParam(r, "email")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	token, err := pathParam(r, "token")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	status, err := h.verification.Confirm(email, token)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	switch status {
	case domain.StatusAlreadyVerified:
		writeJSON(w, http.StatusOK, api.MessageResponse{Message: "This account has already been verified. Please log in."})
	default:
		writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Your account has been successfully verified"})
	}
}

// Resend sends a fresh verification link to the email in the query string.
func (h *Handler) Resend(w http.ResponseWriter, r *http.Request) {
	variant, err := variantFromRequest(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.WriteErrorAndStatusCode(w, internal_errors.Validation("email query parameter is required"))
		return
	}

	status, err := h.verification.Resend(variant, email)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	switch status {
	case domain.StatusAlreadyVerified:
		writeJSON(w, http.StatusOK, api.MessageResponse{Message: "This account has already been verified. Please log in."})
	default:
		writeJSON(w, http.StatusOK, api.MessageResponse{Message: fmt.Sprintf("A verification link has been sent to %s. It will expire in one day.", email)})
	}
}

// Me returns the identity encoded in the bearer token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r)
	if claims == nil {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
		return
	}

	writeJSON(w, http.StatusOK, api.MeResponse{Id: claims.AccountId.String(), Name: claims.Name})
}

package handler

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ryuk156/backend-AOL/internal/config"
	"github.com/ryuk156/backend-AOL/internal/domain"
	"github.com/ryuk156/backend-AOL/internal/jwt"
	"github.com/ryuk156/backend-AOL/internal/middleware"
	"github.com/ryuk156/backend-AOL/internal/service"
	"github.com/stretchr/testify/require"
)

type MockCredentialService struct {
	MockRegister func(variant domain.Variant, data service.RegistrationData) (domain.Account, error)
	MockLogin    func(variant domain.Variant, email, password string) (string, error)
}

func (m *MockCredentialService) Register(variant domain.Variant, data service.RegistrationData) (domain.Account, error) {
	if m.MockRegister != nil {
		return m.MockRegister(variant, data)
	}
	return domain.Account{Id: uuid.New(), Variant: variant, Name: data.Name, Email: data.Email}, nil
}

func (m *MockCredentialService) Login(variant domain.Variant, email, password string) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(variant, email, password)
	}
	return "test_token", nil
}

type MockVerificationService struct {
	MockIssue   func(acc domain.Account) error
	MockConfirm func(email, tokenValue string) (domain.ConfirmationStatus, error)
	MockResend  func(variant domain.Variant, email string) (domain.ConfirmationStatus, error)
}

func (m *MockVerificationService) Issue(acc domain.Account) error {
	if m.MockIssue != nil {
		return m.MockIssue(acc)
	}
	return nil
}

func (m *MockVerificationService) Confirm(email, tokenValue string) (domain.ConfirmationStatus, error) {
	if m.MockConfirm != nil {
		return m.MockConfirm(email, tokenValue)
	}
	return domain.StatusVerified, nil
}

func (m *MockVerificationService) Resend(variant domain.Variant, email string) (domain.ConfirmationStatus, error) {
	if m.MockResend != nil {
		return m.MockResend(variant, email)
	}
	return domain.StatusLinkSent, nil
}

type MockPinger struct {
	MockPing func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{
		MaxIdImageSizeBytes:   5 << 20,
		AllowedImageMimeTypes: []string{"image/png", "image/jpeg"},
	}}
}

var testJwt = jwt.New("test_key", time.Hour)

// newTestRouter registers the same routes main wires up, minus CORS/metrics.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/teacher/register", h.RegisterTeacher)
		r.Post("/volunteer/register", h.RegisterVolunteer)
		r.Post("/{variant}/login", h.Login)
		r.Get("/{variant}/confirmation/{email}/{token}", h.Confirmation)
		r.Get("/{variant}/resendlink", h.Resend)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(testJwt))
			r.Get("/me", h.Me)
		})
	})
	return r
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// teacherMultipartBody builds a multipart registration request body with the
// JSON payload and the identity image.
func teacherMultipartBody(t *testing.T, jsonPayload string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	require.NoError(t, writer.WriteField("json", jsonPayload))

	if image != nil {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="image"; filename="id.png"`}
		header["Content-Type"] = []string{"image/png"}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

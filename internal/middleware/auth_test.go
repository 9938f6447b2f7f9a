package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ryuk156/backend-AOL/internal/domain"
	"github.com/ryuk156/backend-AOL/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	jwtService := jwt.New("test_key", time.Hour)
	acc := domain.Account{Id: uuid.New(), Name: "Ravi"}
	token, err := jwtService.NewToken(acc)
	require.NoError(t, err)

	var gotClaims *domain.TokenClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = GetClaimsFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(jwtService)(next)

	t.Run("valid token", func(t *testing.T) {
		gotClaims = nil
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, acc.Id, gotClaims.AccountId)
		assert.Equal(t, acc.Name, gotClaims.Name)
	})

	t.Run("missing header", func(t *testing.T) {
		gotClaims = nil
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, gotClaims)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		gotClaims = nil
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, gotClaims)
	})

	t.Run("tampered token", func(t *testing.T) {
		gotClaims = nil
		otherService := jwt.New("another_key", time.Hour)
		forged, err := otherService.NewToken(acc)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+forged)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, gotClaims)
	})
}

func TestGetClaimsFromContextWithoutAuth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetClaimsFromContext(req))
}

// file: handler/auth_handler_test.go

package handler

import (
	"encoding/json"
	"go-charts-api/model"
	"go-charts-api/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Login(t *testing.T) {
	authService := service.NewAuthService("handler-test-secret", "Maria")
	loginHandler := ErrorHandlingMiddleware(NewAuthHandler(authService).Login)

	doLogin := func(body string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest("POST", "/api/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		loginHandler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("successful login", func(t *testing.T) {
		rr := doLogin(`{"username": "Maria", "password": "Maria"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response model.LoginResponse
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "Maria", response.Subject)
		assert.Equal(t, int64(7200), response.ExpiresInSeconds)

		claims, err := authService.VerifyToken(response.Token)
		assert.NoError(t, err)
		assert.Equal(t, "Maria", claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		rr := doLogin(`{"username": "Maria", "password": "wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid_credentials")
	})

	t.Run("missing field is a validation error, not bad credentials", func(t *testing.T) {
		rr := doLogin(`{"username": "", "password": "Maria"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "validation_error")
		assert.NotContains(t, rr.Body.String(), "invalid_credentials")
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := doLogin(`{"username": `)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "validation_error")
	})
}

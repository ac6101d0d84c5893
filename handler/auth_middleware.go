package handler

import (
	"context"
	"go-charts-api/common"
	"go-charts-api/service"
	"net/http"
	"strings"
)

type contextKey string

const (
	// SubjectKey holds the authenticated subject in the request context.
	SubjectKey contextKey = "subject"
)

// AuthMiddleware verifies the bearer token on every protected request and
// rejects the request before the wrapped handler runs on any failure. A
// missing or malformed header is reported distinctly from a token that does
// not verify.
func AuthMiddleware(authService *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			err := common.NewAppError(http.StatusUnauthorized, common.CodeMissingCredential, "Authorization header is required", nil)
			err.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			err := common.NewAppError(http.StatusUnauthorized, common.CodeMissingCredential, "Invalid authorization header format", nil)
			err.Send(w)
			return
		}

		claims, err := authService.VerifyToken(headerParts[1])
		if err != nil {
			appErr := common.NewAppError(http.StatusUnauthorized, common.CodeInvalidToken, "Invalid or expired token", err)
			appErr.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

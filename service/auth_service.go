package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"go-charts-api/logger"
	"go-charts-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL is the fixed lifetime of every issued token. There is no refresh
// path: once expired, the only way back in is a fresh login.
const tokenTTL = 2 * time.Hour

var (
	// ErrInvalidCredentials is returned when the login check fails. It does
	// not reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for any token that fails verification:
	// bad signature, structural damage, or expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService issues and verifies signed bearer tokens. It holds no mutable
// state: both operations are pure functions of the configured secret, the
// input, and the clock.
type AuthService struct {
	secretKey    []byte
	expectedName string
}

// NewAuthService creates an AuthService from the configured signing secret
// and the single expected login value. The configuration is passed in
// explicitly rather than read from ambient state so the service stays
// testable.
func NewAuthService(secretKey, expectedName string) *AuthService {
	return &AuthService{
		secretKey:    []byte(secretKey),
		expectedName: expectedName,
	}
}

// GenerateToken signs a new token for the given subject. The jti claim makes
// two tokens issued for the same subject distinct even within the same
// second. Returns the token and its lifetime in seconds.
func (s *AuthService) GenerateToken(subject string) (string, int64, error) {
	now := time.Now()

	claims := &model.AppClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		logger.Log.WithError(err).WithField("subject", subject).Error("Failed to sign JWT")
		return "", 0, fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, int64(tokenTTL.Seconds()), nil
}

// VerifyToken parses and validates a presented token string and returns its
// decoded claims. Any failure collapses to ErrInvalidToken; the caller never
// sees a panic or a raw library error.
func (s *AuthService) VerifyToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Login checks the shared-value credential and issues a token on success.
// Username and password must both equal the configured expected name; the
// comparison is constant-time and the error never says which field failed.
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	expected := []byte(s.expectedName)
	usernameOK := subtle.ConstantTimeCompare([]byte(username), expected) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), expected) == 1
	if !usernameOK || !passwordOK {
		return nil, ErrInvalidCredentials
	}

	token, expiresIn, err := s.GenerateToken(username)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("subject", username).Info("Login successful, token issued")

	return &model.LoginResponse{
		Token:            token,
		Subject:          username,
		ExpiresInSeconds: expiresIn,
	}, nil
}

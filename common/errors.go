package common

import (
	"encoding/json"
	"go-charts-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Stable machine-readable error codes. Every failure maps to exactly one
// HTTP status and one of these codes.
const (
	CodeValidationError    = "validation_error"
	CodeInvalidCredentials = "invalid_credentials"
	CodeMissingCredential  = "missing_credential"
	CodeInvalidToken       = "invalid_token"
	CodeChartNotFound      = "chart_not_found"
	CodeDependencyError    = "dependency_error"
)

type AppError struct {
	Code      int    `json:"-"`
	ErrorCode string `json:"error"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, errorCode, message string, err error) *AppError {
	return &AppError{
		Code:      code,
		ErrorCode: errorCode,
		Message:   message,
		Err:       err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"error_code":     e.ErrorCode,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}

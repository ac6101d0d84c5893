package handler

import (
	"encoding/json"
	"errors"
	"go-charts-api/common"
	"go-charts-api/logger"
	"go-charts-api/model"
	"go-charts-api/service"
	"net/http"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Log in with the shared credential
// @Description  Issues a signed bearer token valid for two hours
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.LoginRequest  true  "Login credentials"
// @Success      200      {object}  model.LoginResponse
// @Failure      400      {object}  common.AppError
// @Failure      401      {object}  common.AppError
// @Router       /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	result, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return common.NewAppError(http.StatusUnauthorized, common.CodeInvalidCredentials, "Invalid credentials", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, common.CodeDependencyError, "Could not issue token", err)
	}

	logger.Log.WithField("subject", result.Subject).Info("Login request succeeded")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)

	return nil
}

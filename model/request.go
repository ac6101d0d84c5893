// file: model/request.go

package model

// LoginRequest defines the payload for authentication.
// It includes validation tags to ensure data integrity at the entry point.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token            string `json:"token"`
	Subject          string `json:"subject"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
}

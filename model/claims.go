package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the decoded payload of a signed bearer token. The token is
// self-contained: subject and expiry are re-derived from it without any
// server-side lookup.
type AppClaims struct {
	jwt.RegisteredClaims
}

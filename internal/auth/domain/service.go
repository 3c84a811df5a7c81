package domain

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
}

// Claims is the JWT payload issued on login. Only admin tokens may call
// the administration API.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Verify(ctx context.Context, token string) (*Claims, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrTokenExpired       = errors.New("token_expired")
	ErrTokenInvalid       = errors.New("token_invalid")
	ErrAdminRequired      = errors.New("admin_required")
)

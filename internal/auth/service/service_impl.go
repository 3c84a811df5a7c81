package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	approverdomain "github.com/fieldhr/rollcall/internal/approver/domain"
	"github.com/fieldhr/rollcall/internal/auth/domain"
	"github.com/fieldhr/rollcall/internal/auth/password"
	"github.com/fieldhr/rollcall/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Logger    *zap.Logger
	Config    config.Config
	Policy    *config.PolicyHolder
	Approvers approverdomain.Service
}

type service struct {
	log       *zap.Logger
	cfg       config.Config
	policy    *config.PolicyHolder
	approvers approverdomain.Service
	secret    []byte
}

func New(p Params) domain.Service {
	secret := p.Config.AuthJWTSecret
	if secret == "" {
		secret = "rollcall-dev-secret"
		p.Logger.Warn("AUTH_JWT_SECRET not set, using development default")
	}

	return &service{
		log:       p.Logger.Named("auth.service"),
		cfg:       p.Config,
		policy:    p.Policy,
		approvers: p.Approvers,
		secret:    []byte(secret),
	}
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	isAdmin, err := s.authenticate(ctx, username, req.Password)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	ttl := time.Duration(s.policy.Get().TokenTTLHours) * time.Hour
	now := time.Now()

	claims := domain.Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.log.Error("failed to sign token", zap.Error(err))
		return domain.LoginResponse{}, err
	}

	s.log.Info("login succeeded", zap.String("username", username), zap.Bool("is_admin", isAdmin))
	return domain.LoginResponse{Token: token, IsAdmin: isAdmin}, nil
}

func (s *service) authenticate(ctx context.Context, username, pass string) (bool, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1 {
		if subtle.ConstantTimeCompare([]byte(pass), []byte(s.cfg.AdminPassword)) == 1 {
			return true, nil
		}
		return false, domain.ErrInvalidCredentials
	}

	approver, err := s.approvers.GetByEmpID(ctx, username)
	if err != nil {
		if errors.Is(err, approverdomain.ErrNotFound) {
			return false, domain.ErrInvalidCredentials
		}
		return false, err
	}
	if !password.Verify(pass, approver.PasswordHash) {
		return false, domain.ErrInvalidCredentials
	}
	return false, nil
}

func (s *service) Verify(_ context.Context, token string) (*domain.Claims, error) {
	var claims domain.Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return &claims, nil
}

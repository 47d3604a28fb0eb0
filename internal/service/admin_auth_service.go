package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/pkg/auth"
)

// TokenIssuer signs admin claims into a bearer token.
type TokenIssuer interface {
	Issue(claims auth.Claims) (string, error)
}

// AdminAuthService は管理者ログインのビジネスロジック
type AdminAuthService interface {
	// Login verifies password against the configured admin credential and
	// returns a bearer token for the admin subject. A wrong password yields
	// ErrUnauthenticated and no token.
	Login(ctx context.Context, password string) (*model.AccessToken, error)
}

type adminAuthServiceImpl struct {
	passwordHash string
	tokens       TokenIssuer
}

// NewAdminAuthService creates an AdminAuthService. passwordHash must be an
// Argon2id hash produced by auth.HashPassword.
func NewAdminAuthService(passwordHash string, tokens TokenIssuer) AdminAuthService {
	return &adminAuthServiceImpl{passwordHash: passwordHash, tokens: tokens}
}

func (s *adminAuthServiceImpl) Login(ctx context.Context, password string) (*model.AccessToken, error) {
	ok, err := auth.VerifyPassword(password, s.passwordHash)
	if err != nil {
		return nil, fmt.Errorf("verify admin password: %w", err)
	}
	if !ok {
		slog.WarnContext(ctx, "admin login rejected")
		return nil, ErrUnauthenticated
	}

	token, err := s.tokens.Issue(auth.Claims{"sub": auth.AdminSubject})
	if err != nil {
		return nil, err
	}
	return &model.AccessToken{AccessToken: token, TokenType: "bearer"}, nil
}

// ResolveAdminPasswordHash returns the hash to verify logins against.
// A configured hash wins; otherwise the plaintext password is hashed once so
// logins never compare plaintext.
func ResolveAdminPasswordHash(plain, hash string, params auth.Argon2Params) (string, error) {
	if hash != "" {
		if !auth.IsPasswordHash(hash) {
			return "", fmt.Errorf("ADMIN_PASSWORD_HASH is not an argon2id hash")
		}
		return hash, nil
	}
	return auth.HashPassword(plain, params)
}

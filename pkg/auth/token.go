package auth

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject は管理者トークンの sub クレーム
const AdminSubject = "admin"

// DefaultTokenTTL is how long an issued admin token stays valid.
const DefaultTokenTTL = 24 * time.Hour

const minSecretLen = 32

var (
	// ErrExpiredCredential is returned by Verify when the token's exp is in the past.
	ErrExpiredCredential = errors.New("credential expired")
	// ErrInvalidCredential is returned by Verify for bad signatures and malformed tokens.
	ErrInvalidCredential = errors.New("credential invalid")
)

// Claims is the claim set embedded in a token.
type Claims map[string]any

// Subject returns the "sub" claim, or "" when absent.
func (c Claims) Subject() string {
	s, _ := c["sub"].(string)
	return s
}

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService はトークンサービスを生成する。ttl が 0 以下なら 24 時間。
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: SecretBytes(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for issuing and verifying.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs claims plus exp/iat. The caller's map is not modified.
func (s *TokenService) Issue(claims Claims) (string, error) {
	issuedAt := s.now()
	mc := jwt.MapClaims{}
	maps.Copy(mc, claims)
	mc["iat"] = jwt.NewNumericDate(issuedAt)
	mc["exp"] = jwt.NewNumericDate(issuedAt.Add(s.ttl))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and expiry and returns the embedded claims.
func (s *TokenService) Verify(token string) (Claims, error) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredCredential
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidCredential
	}
	return Claims(mc), nil
}

// SecretBytes は署名用のバイト列を返す（32 バイト未満はゼロ埋め）
func SecretBytes(b []byte) []byte {
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

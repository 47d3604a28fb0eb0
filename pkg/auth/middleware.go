package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type contextKey string

const subjectKey contextKey = "subject"

// SubjectFromContext は context から認証済みの subject を取得する
func SubjectFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(subjectKey).(string)
	return v, ok
}

// WithSubject は context に subject をセットする
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// Verifier verifies a bearer token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAdmin は管理者トークン必須ミドルウェア。
// 401 のボディは {"error": "expired"} か {"error": "invalid"}。
func RequireAdmin(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				unauthorized(w, "invalid", "missing_token")
				return
			}

			claims, err := v.Verify(token)
			if errors.Is(err, ErrExpiredCredential) {
				unauthorized(w, "expired", "token_expired")
				return
			}
			if err != nil {
				unauthorized(w, "invalid", "invalid_token")
				return
			}
			if claims.Subject() != AdminSubject {
				unauthorized(w, "invalid", "not_admin")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Subject())))
		})
	}
}

// DevAdminSubject は ADMIN_AUTH_REQUIRED=false 時に context にセットされる subject
const DevAdminSubject = "dev-admin"

// OpenAdmin lets every request through as DevAdminSubject. Used when admin
// authentication is switched off for local development.
func OpenAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), DevAdminSubject)))
	})
}

func unauthorized(w http.ResponseWriter, reason, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": reason, "detail": detail})
}

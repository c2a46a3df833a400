package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"sponsor_backend/internal/model"
	"sponsor_backend/pkg/resp"
	"sponsor_backend/pkg/token"
)

type claimsCtxKey struct{}

// AuthMiddleware - гейты доступа по сессионному токену.
// Проверка чисто криптографическая, БД не используется
type AuthMiddleware struct {
	secretKey []byte
	log       *logrus.Logger
}

func NewAuthMiddleware(secretKey []byte, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secretKey: secretKey,
		log:       log,
	}
}

// RequireSession - пропускает запрос с любым валидным сессионным токеном.
// Без заголовка Authorization - 401, с невалидным токеном - 403
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if len(authHeader) == 0 {
			resp.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			resp.WriteError(w, http.StatusForbidden, "invalid authorization header")
			return
		}

		claims, err := token.VerifySessionToken(parts[1], m.secretKey)
		if err != nil {
			m.log.WithError(err).Debug("session token verification failed")
			resp.WriteError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireAdmin - как RequireSession, но токен должен нести флаг администратора
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || !claims.IsAdmin {
			resp.WriteError(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	}))
}

func WithClaims(ctx context.Context, claims *model.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*model.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*model.SessionClaims)
	return claims, ok
}

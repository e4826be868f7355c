package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/calypso-charters/CharterBookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет админ-токен в заголовке X-Admin-Token.
// Вешается только на админ-маршруты; публичные маршруты токена не требуют
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" {
				logger.Warn("AdminAuth: missing %s header for %s %s", adminTokenHeader, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("AdminAuth: invalid admin token for %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

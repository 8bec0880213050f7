package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/domain"
)

const (
	authRealm = `Basic realm="barber-booking", charset="UTF-8"`

	msgAuthRequired       = "требуется авторизация сотрудника"
	msgInvalidCredentials = "неверный email или пароль"
	msgStorageUnavailable = "хранилище временно недоступно"
)

type staffKey struct{}

// WithStaff кладёт аутентифицированного сотрудника в контекст запроса
func WithStaff(ctx context.Context, staff *domain.StaffIdentity) context.Context {
	return context.WithValue(ctx, staffKey{}, staff)
}

// GetStaff возвращает сотрудника, аутентифицированного в этом запросе
func GetStaff(ctx context.Context) (*domain.StaffIdentity, bool) {
	staff, ok := ctx.Value(staffKey{}).(*domain.StaffIdentity)
	return staff, ok && staff != nil
}

// StaffAuth проверяет HTTP Basic учётные данные на каждом запросе
// Сессии не хранятся: идентичность живёт только в контексте текущего запроса
func StaffAuth(auth Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", authRealm)
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}

			staff, err := auth.Authenticate(r.Context(), email, password)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUnauthorized):
					logger.Warn("StaffAuth: rejected credentials for %s %s", r.Method, r.URL.Path)
					w.Header().Set("WWW-Authenticate", authRealm)
					handlers.RespondUnauthorized(w, msgInvalidCredentials)
				case errors.Is(err, domain.ErrStorageUnavailable):
					logger.Error("StaffAuth: storage unavailable: %v", err)
					handlers.RespondServiceUnavailable(w, msgStorageUnavailable)
				default:
					logger.Error("StaffAuth: authentication failed: %v", err)
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStaff(r.Context(), staff)))
		})
	}
}

package middleware

import (
	"context"

	"github.com/m04kA/barber-booking/internal/domain"
)

// Authenticator проверяет учётные данные сотрудника
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*domain.StaffIdentity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package staff

import (
	"context"

	"github.com/m04kA/barber-booking/internal/domain"
)

// StaffRepository интерфейс репозитория учётных записей сотрудников
type StaffRepository interface {
	Create(ctx context.Context, account *domain.StaffAccount) (*domain.StaffAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

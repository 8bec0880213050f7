package bookings

import (
	"context"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	FindByClientName(ctx context.Context, fragment string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
}

// TransactionManager выполняет fn в одной транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Calendar текущая дата и неделя в часовом поясе заведения
type Calendar interface {
	Today() time.Time
	CurrentWeek() (time.Time, time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

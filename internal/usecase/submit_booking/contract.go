package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Book(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// SlotPolicy правила допустимых дней и времени записи
type SlotPolicy interface {
	IsNotPast(date time.Time) bool
	IsOpenDay(date time.Time) bool
	IsSlotTime(t types.TimeString) bool
}

// Metrics счётчик исходов записи
type Metrics interface {
	ObserveBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// SlotPolicy правила допустимых дней и времени записи
type SlotPolicy interface {
	IsNotPast(date time.Time) bool
	IsOpenDay(date time.Time) bool
	Slots() []types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

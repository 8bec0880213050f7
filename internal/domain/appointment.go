package domain

import (
	"strings"
	"time"

	"github.com/m04kA/barber-booking/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// AllStatuses закрытый список статусов
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ParseStatus приводит строку к статусу без учёта регистра
// Неизвестные значения не подменяются статусом по умолчанию
func ParseStatus(s string) (AppointmentStatus, bool) {
	for _, status := range AllStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(status)) {
			return status, true
		}
	}
	return "", false
}

// Appointment запись клиента на услугу
type Appointment struct {
	ID          int64
	ClientName  string
	ClientPhone string
	ServiceID   int64
	Date        time.Time // только дата, полночь UTC
	Time        types.TimeString
	Status      AppointmentStatus

	// Данные услуги на момент чтения (JOIN, не денормализуются при записи)
	ServiceName     string
	ServiceDuration int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает слот
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// AppointmentFilter фильтр выборки записей
type AppointmentFilter struct {
	From   *time.Time         // Начало периода включительно (nil - без ограничения)
	To     *time.Time         // Конец периода включительно (nil - без ограничения)
	Status *AppointmentStatus // Точный статус (nil - любой)
}

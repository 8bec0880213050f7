package submit_booking

import (
	"time"

	"github.com/m04kA/barber-booking/pkg/types"
)

// Request модель запроса на запись. Поля приходят от клиента как есть и валидируются в usecase
type Request struct {
	ClientName  string
	ClientPhone string
	ServiceID   int64 // 0 - услуга не выбрана
	Date        string
	Time        string
}

// Response модель ответа с созданной записью
type Response struct {
	ID                   int64
	ClientName           string
	ClientPhone          string
	ClientPhoneFormatted string
	ServiceID            int64
	ServiceName          string
	ServiceDuration      int
	Date                 time.Time
	Time                 types.TimeString
	Status               string
	CreatedAt            time.Time
}

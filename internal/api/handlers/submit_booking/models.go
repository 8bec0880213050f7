package submit_booking

import (
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	submitBooking "github.com/m04kA/barber-booking/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP запрос на запись
type SubmitBookingRequest struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ServiceID   int64  `json:"serviceId"`
	Date        string `json:"date"` // "2025-06-02"
	Time        string `json:"time"` // "09:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Поля передаются как есть: форму и слот проверяет use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ServiceID:   r.ServiceID,
		Date:        r.Date,
		Time:        r.Time,
	}
}

// AppointmentResponse HTTP ответ с созданной записью
type AppointmentResponse struct {
	ID                   int64     `json:"id"`
	ClientName           string    `json:"clientName"`
	ClientPhone          string    `json:"clientPhone"`
	ClientPhoneFormatted string    `json:"clientPhoneFormatted"`
	ServiceID            int64     `json:"serviceId"`
	ServiceName          string    `json:"serviceName"`
	ServiceDuration      int       `json:"serviceDurationMinutes"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *submitBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                   resp.ID,
		ClientName:           resp.ClientName,
		ClientPhone:          resp.ClientPhone,
		ClientPhoneFormatted: resp.ClientPhoneFormatted,
		ServiceID:            resp.ServiceID,
		ServiceName:          resp.ServiceName,
		ServiceDuration:      resp.ServiceDuration,
		Date:                 resp.Date.Format(domain.DateFormat),
		Time:                 resp.Time.String(),
		Status:               resp.Status,
		CreatedAt:            resp.CreatedAt,
	}
}

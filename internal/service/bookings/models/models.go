package models

import (
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/phone"
)

// Period период выборки записей для сотрудников
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodAll   Period = "all"
)

var periodAliases = map[string]Period{
	"":       PeriodAll,
	"today":  PeriodToday,
	"hoje":   PeriodToday,
	"week":   PeriodWeek,
	"semana": PeriodWeek,
	"all":    PeriodAll,
	"todos":  PeriodAll,
}

// ParsePeriod приводит строку к периоду без учёта регистра, пустая строка - все записи
func ParsePeriod(s string) (Period, bool) {
	p, ok := periodAliases[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// ParseStatusFilter разбирает фильтр статуса: пустая строка или "all" - без фильтра
func ParseStatusFilter(s string) (*domain.AppointmentStatus, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "all") || strings.EqualFold(trimmed, "todos") {
		return nil, true
	}
	status, ok := domain.ParseStatus(trimmed)
	if !ok {
		return nil, false
	}
	return &status, true
}

// Request модели

// ListAppointmentsRequest запрос списка записей для сотрудников
type ListAppointmentsRequest struct {
	Period string `json:"period,omitempty"` // today | week | all (hoje | semana | todos)
	Status string `json:"status,omitempty"` // Pending | Confirmed | Cancelled | all
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                   int64     `json:"id"`
	ClientName           string    `json:"clientName"`
	ClientPhone          string    `json:"clientPhone"`
	ClientPhoneFormatted string    `json:"clientPhoneFormatted"`
	ServiceID            int64     `json:"serviceId"`
	ServiceName          string    `json:"serviceName"`
	ServiceDuration      int       `json:"serviceDurationMinutes"`
	Date                 string    `json:"date"`              // "2025-06-02"
	Time                 string    `json:"time"`              // "09:00"
	EndTime              string    `json:"endTime,omitempty"` // время + длительность услуги
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     *string `json:"description,omitempty"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                   a.ID,
		ClientName:           a.ClientName,
		ClientPhone:          a.ClientPhone,
		ClientPhoneFormatted: phone.Format(a.ClientPhone),
		ServiceID:            a.ServiceID,
		ServiceName:          a.ServiceName,
		ServiceDuration:      a.ServiceDuration,
		Date:                 a.Date.Format(domain.DateFormat),
		Time:                 a.Time.String(),
		Status:               string(a.Status),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	// Услуга, заканчивающаяся после полуночи, не имеет времени окончания в пределах дня
	if end, err := a.Time.AddMinutes(a.ServiceDuration); err == nil {
		resp.EndTime = end.String()
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if r := FromDomainAppointment(a); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}

	return resp
}

// FromDomainService конвертирует domain модель услуги в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
	}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if r := FromDomainService(s); r != nil {
			resp.Services = append(resp.Services, *r)
		}
	}

	return resp
}

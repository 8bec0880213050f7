package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/metrics"
	"github.com/m04kA/barber-booking/pkg/phone"
)

// UseCase use case записи клиента на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	policy          SlotPolicy
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policy SlotPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policy:          policy,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute валидирует запрос и создаёт запись в статусе Pending
// До успешной валидации хранилище не вызывается.
// Conflict и NotFound из хранилища возвращаются с сохранением вида ошибки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: service=%d, date=%s, time=%s", req.ServiceID, req.Date, req.Time)

	// 1. Валидация формы и слота
	v, err := validateRequest(req, uc.policy)
	if err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		uc.observe(metrics.OutcomeRejected)
		return nil, err
	}

	// 2. Атомарная проверка конфликта и вставка
	appointment, err := uc.appointmentRepo.Book(ctx, &domain.Appointment{
		ClientName:  v.name,
		ClientPhone: v.phone,
		ServiceID:   v.serviceID,
		Date:        v.date,
		Time:        v.time,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			uc.logger.Warn("SubmitBooking: slot %s %s already taken", v.date.Format(domain.DateFormat), v.time)
			uc.observe(metrics.OutcomeConflict)
			return nil, err
		case errors.Is(err, domain.ErrNotFound):
			uc.logger.Warn("SubmitBooking: service id=%d not found", v.serviceID)
			uc.observe(metrics.OutcomeRejected)
			return nil, err
		default:
			uc.logger.Error("SubmitBooking: failed to book: %v", err)
			uc.observe(metrics.OutcomeFailed)
			return nil, fmt.Errorf("%w: Execute - book: %w", ErrInternal, err)
		}
	}

	uc.observe(metrics.OutcomeCreated)
	uc.logger.Info("SubmitBooking: created appointment id=%d", appointment.ID)

	return &Response{
		ID:                   appointment.ID,
		ClientName:           appointment.ClientName,
		ClientPhone:          appointment.ClientPhone,
		ClientPhoneFormatted: phone.Format(appointment.ClientPhone),
		ServiceID:            appointment.ServiceID,
		ServiceName:          appointment.ServiceName,
		ServiceDuration:      appointment.ServiceDuration,
		Date:                 appointment.Date,
		Time:                 appointment.Time,
		Status:               string(appointment.Status),
		CreatedAt:            appointment.CreatedAt,
	}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(outcome)
	}
}

package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

// UseCase use case получения слотов на дату с отметкой занятости
type UseCase struct {
	appointmentRepo AppointmentRepository
	policy          SlotPolicy
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	policy SlotPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		policy:          policy,
		logger:          logger,
	}
}

// Execute возвращает все слоты на дату с признаком доступности
// Для выходного дня возвращается пустой список без обращения к хранилищу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Валидация даты
	date, err := validateRequest(req, uc.policy)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Выходной день
	if !uc.policy.IsOpenDay(date) {
		uc.logger.Info("GetAvailableSlots: %s is a closed day", date.Format(domain.DateFormat))
		return &Response{Date: date, Open: false, Slots: []Slot{}}, nil
	}

	// 3. Записи на дату (все статусы, отменённые отфильтровываются при разметке)
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		From: &date,
		To:   &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Execute - list appointments: %w", ErrInternal, err)
	}

	// 4. Разметка сетки
	slots := buildSlots(uc.policy.Slots(), appointments)

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots, %d appointments",
		date.Format(domain.DateFormat), len(slots), len(appointments))

	return &Response{
		Date:  date,
		Open:  true,
		Slots: slots,
	}, nil
}

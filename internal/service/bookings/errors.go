package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrNotAuthenticated возвращается, если действие требует сотрудника, а его нет
	ErrNotAuthenticated = fmt.Errorf("%w: staff authentication required", domain.ErrUnauthorized)

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment not found", domain.ErrNotFound)

	// ErrSlotTaken возвращается, когда запись нельзя вернуть в активный статус: слот уже занят
	ErrSlotTaken = fmt.Errorf("%w: slot is already taken by another appointment", domain.ErrConflict)

	// ErrServiceNameTaken возвращается при создании услуги с существующим именем
	ErrServiceNameTaken = fmt.Errorf("%w: service with this name already exists", domain.ErrConflict)

	// ErrInvalidStatus возвращается при недопустимом статусе
	ErrInvalidStatus = fmt.Errorf("%w: status must be one of Pending, Confirmed, Cancelled", domain.ErrInvalidInput)

	// ErrInvalidPeriod возвращается при недопустимом периоде
	ErrInvalidPeriod = fmt.Errorf("%w: period must be one of today, week, all", domain.ErrInvalidInput)

	// ErrInvalidID возвращается при некорректном ID
	ErrInvalidID = fmt.Errorf("%w: id must be positive", domain.ErrInvalidInput)

	// ErrEmptySearch возвращается при пустой строке поиска
	ErrEmptySearch = fmt.Errorf("%w: client name to search is required", domain.ErrInvalidInput)

	// ErrInvalidService возвращается при некорректных данных услуги
	ErrInvalidService = fmt.Errorf("%w: invalid service", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)

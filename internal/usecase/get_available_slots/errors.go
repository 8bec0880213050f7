package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrDateRequired возвращается, если дата не указана
	ErrDateRequired = fmt.Errorf("%w: date is required", domain.ErrInvalidInput)

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = fmt.Errorf("%w: date must be in YYYY-MM-DD format", domain.ErrInvalidInput)

	// ErrDateInPast возвращается, если дата раньше сегодняшней
	ErrDateInPast = fmt.Errorf("%w: date must not be in the past", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

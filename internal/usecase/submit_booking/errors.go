package submit_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

var (
	// ErrNameRequired возвращается, если имя клиента не указано
	ErrNameRequired = fmt.Errorf("%w: client name is required", domain.ErrInvalidInput)

	// ErrNameTooShort возвращается, если имя клиента короче минимальной длины
	ErrNameTooShort = fmt.Errorf("%w: client name must be at least %d characters", domain.ErrInvalidInput, domain.MinClientNameLength)

	// ErrPhoneRequired возвращается, если телефон не указан
	ErrPhoneRequired = fmt.Errorf("%w: client phone is required", domain.ErrInvalidInput)

	// ErrPhoneTooShort возвращается, если в телефоне меньше минимального количества цифр
	ErrPhoneTooShort = fmt.Errorf("%w: client phone must contain at least %d digits", domain.ErrInvalidInput, domain.MinClientPhoneDigits)

	// ErrServiceRequired возвращается, если услуга не выбрана
	ErrServiceRequired = fmt.Errorf("%w: service is required", domain.ErrInvalidInput)

	// ErrDateRequired возвращается, если дата не указана
	ErrDateRequired = fmt.Errorf("%w: date is required", domain.ErrInvalidInput)

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = fmt.Errorf("%w: date must be in YYYY-MM-DD format", domain.ErrInvalidInput)

	// ErrDateInPast возвращается, если дата раньше сегодняшней
	ErrDateInPast = fmt.Errorf("%w: date must not be in the past", domain.ErrInvalidInput)

	// ErrTimeRequired возвращается, если время не указано
	ErrTimeRequired = fmt.Errorf("%w: time is required", domain.ErrInvalidInput)

	// ErrClosedDay возвращается, если в этот день недели заведение не работает
	ErrClosedDay = fmt.Errorf("%w: the shop is closed on this day", domain.ErrInvalidInput)

	// ErrInvalidSlot возвращается, если время не входит в сетку слотов
	ErrInvalidSlot = fmt.Errorf("%w: time is not an available slot", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

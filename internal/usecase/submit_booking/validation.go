package submit_booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/schedule"
	"github.com/m04kA/barber-booking/pkg/phone"
	"github.com/m04kA/barber-booking/pkg/types"
)

// validated запрос после проверки формы
type validated struct {
	name      string
	phone     string
	serviceID int64
	date      time.Time
	time      types.TimeString
}

// validateRequest проверяет запрос по порядку, первая ошибка прерывает проверку:
// имя, телефон, услуга, дата, время (рабочий день и сетка слотов)
func validateRequest(req *Request, policy SlotPolicy) (*validated, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return nil, ErrNameRequired
	}
	if utf8.RuneCountInString(name) < domain.MinClientNameLength {
		return nil, ErrNameTooShort
	}

	rawPhone := strings.TrimSpace(req.ClientPhone)
	if rawPhone == "" {
		return nil, ErrPhoneRequired
	}
	if len(phone.Digits(rawPhone)) < domain.MinClientPhoneDigits {
		return nil, ErrPhoneTooShort
	}

	if req.ServiceID <= 0 {
		return nil, ErrServiceRequired
	}

	rawDate := strings.TrimSpace(req.Date)
	if rawDate == "" {
		return nil, ErrDateRequired
	}
	date, err := schedule.ParseDate(rawDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !policy.IsNotPast(date) {
		return nil, ErrDateInPast
	}

	rawTime := strings.TrimSpace(req.Time)
	if rawTime == "" {
		return nil, ErrTimeRequired
	}
	if !policy.IsOpenDay(date) {
		return nil, ErrClosedDay
	}
	slot, err := types.NewTimeStringFromString(rawTime)
	if err != nil || !policy.IsSlotTime(slot) {
		return nil, ErrInvalidSlot
	}

	return &validated{
		name:      name,
		phone:     rawPhone,
		serviceID: req.ServiceID,
		date:      date,
		time:      slot,
	}, nil
}

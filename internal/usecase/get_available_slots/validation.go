package get_available_slots

import (
	"strings"
	"time"

	"github.com/m04kA/barber-booking/internal/service/schedule"
)

// validateRequest парсит дату и проверяет, что она не в прошлом
func validateRequest(req *Request, policy SlotPolicy) (time.Time, error) {
	raw := strings.TrimSpace(req.Date)
	if raw == "" {
		return time.Time{}, ErrDateRequired
	}

	date, err := schedule.ParseDate(raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	if !policy.IsNotPast(date) {
		return time.Time{}, ErrDateInPast
	}

	return date, nil
}

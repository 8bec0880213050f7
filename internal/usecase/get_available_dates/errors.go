package get_available_dates

import (
	"fmt"

	"github.com/m04kA/barber-booking/internal/domain"
)

// ErrInvalidHorizon возвращается при горизонте вне допустимого диапазона
var ErrInvalidHorizon = fmt.Errorf("%w: horizon must be between 1 and %d days", domain.ErrInvalidInput, domain.MaxHorizonDays)

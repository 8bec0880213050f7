package get_available_dates

import getAvailableDates "github.com/m04kA/barber-booking/internal/usecase/get_available_dates"

type GetAvailableDatesUseCase interface {
	Execute(req *getAvailableDates.Request) (*getAvailableDates.Response, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

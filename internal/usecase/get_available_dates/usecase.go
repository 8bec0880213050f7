package get_available_dates

import (
	"slices"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
)

// Request модель запроса рабочих дат
type Request struct {
	HorizonDays int // 0 - горизонт по умолчанию
}

// Response модель ответа с рабочими датами
type Response struct {
	HorizonDays int
	Dates       []time.Time
}

// UseCase use case получения ближайших рабочих дат
type UseCase struct {
	policy         SlotPolicy
	defaultHorizon int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(policy SlotPolicy, defaultHorizon int, logger Logger) *UseCase {
	if defaultHorizon <= 0 {
		defaultHorizon = domain.DefaultHorizonDays
	}
	return &UseCase{
		policy:         policy,
		defaultHorizon: defaultHorizon,
		logger:         logger,
	}
}

// Execute возвращает рабочие даты в пределах горизонта, начиная с сегодняшней
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = uc.defaultHorizon
	}
	if horizon < 0 || horizon > domain.MaxHorizonDays {
		uc.logger.Warn("GetAvailableDates: invalid horizon=%d", req.HorizonDays)
		return nil, ErrInvalidHorizon
	}

	dates := slices.Collect(uc.policy.AvailableDates(horizon))
	uc.logger.Info("GetAvailableDates: horizon=%d, %d open dates", horizon, len(dates))

	return &Response{
		HorizonDays: horizon,
		Dates:       dates,
	}, nil
}

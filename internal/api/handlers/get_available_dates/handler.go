package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/domain"
	getAvailableDates "github.com/m04kA/barber-booking/internal/usecase/get_available_dates"
)

const msgInvalidHorizon = "некорректный горизонт, ожидается целое число дней"

// AvailableDatesResponse HTTP ответ с рабочими датами
type AvailableDatesResponse struct {
	HorizonDays int      `json:"horizonDays"`
	Dates       []string `json:"dates"`
}

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates
// Query params: horizon (опционально, дни)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var horizon int
	if raw := r.URL.Query().Get("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /available-dates - Invalid horizon: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHorizon)
			return
		}
		if parsed <= 0 {
			handlers.RespondBadRequest(w, msgInvalidHorizon)
			return
		}
		horizon = parsed
	}

	result, err := h.useCase.Execute(&getAvailableDates.Request{HorizonDays: horizon})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.logger.Warn("GET /available-dates - %v", err)
			handlers.RespondBadRequest(w, handlers.UserMessage(err))
			return
		}
		h.logger.Error("GET /available-dates - Failed to get dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	dates := make([]string, 0, len(result.Dates))
	for _, d := range result.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	handlers.RespondJSON(w, http.StatusOK, AvailableDatesResponse{
		HorizonDays: result.HorizonDays,
		Dates:       dates,
	})
}

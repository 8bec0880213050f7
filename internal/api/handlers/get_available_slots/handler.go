package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barber-booking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "дата обязательна"
	msgStorageUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: dateStr})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, handlers.UserMessage(err))

		case errors.Is(err, domain.ErrStorageUnavailable):
			h.logger.Error("GET /available-slots - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

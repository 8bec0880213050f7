package search_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/api/middleware"
	"github.com/m04kA/barber-booking/internal/domain"
)

const (
	msgAuthRequired       = "требуется авторизация сотрудника"
	msgStorageUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/search
// Query params: client (подстрока имени клиента, без учёта регистра)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staff, ok := middleware.GetStaff(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	client := r.URL.Query().Get("client")

	result, err := h.service.SearchByClient(r.Context(), staff, client)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.logger.Warn("GET /appointments/search - Invalid query: %v", err)
		} else {
			h.logger.Error("GET /appointments/search - Failed to search: staff_id=%d, error=%v", staff.ID, err)
		}
		handlers.RespondDomainError(w, err, msgStorageUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/api/middleware"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
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

// Handle GET /api/v1/appointments
// Query params: period (today|week|all, hoje|semana|todos), status (Pending|Confirmed|Cancelled|all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staff, ok := middleware.GetStaff(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing staff identity")
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	req := &models.ListAppointmentsRequest{
		Period: r.URL.Query().Get("period"),
		Status: r.URL.Query().Get("status"),
	}

	result, err := h.service.ListForStaff(r.Context(), staff, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: period=%q, status=%q", req.Period, req.Status)
		case errors.Is(err, domain.ErrUnauthorized):
			h.logger.Warn("GET /appointments - Unauthorized")
		default:
			h.logger.Error("GET /appointments - Failed to list appointments: staff_id=%d, error=%v", staff.ID, err)
		}
		handlers.RespondDomainError(w, err, msgStorageUnavailable)
		return
	}

	h.logger.Info("GET /appointments - staff_id=%d, %d appointments", staff.ID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/api/middleware"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgAuthRequired         = "требуется авторизация сотрудника"
	msgNotFound             = "запись не найдена"
	msgSlotTaken            = "слот этой записи уже занят другой записью"
	msgStorageUnavailable   = "хранилище временно недоступно"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %q", mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	staff, ok := middleware.GetStaff(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetStatus(r.Context(), staff, appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status %q", req.Status)
			handlers.RespondBadRequest(w, handlers.UserMessage(err))

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("PATCH /appointments/{id}/status - Slot taken: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, domain.ErrStorageUnavailable):
			h.logger.Error("PATCH /appointments/{id}/status - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStorageUnavailable)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - appointment_id=%d set to %s by staff_id=%d",
		appointmentID, result.Status, staff.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

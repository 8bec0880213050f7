package register_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/api/middleware"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAuthRequired       = "требуется авторизация сотрудника"
	msgEmailTaken         = "email уже зарегистрирован"
	msgStorageUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.GetStaff(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), caller, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			handlers.RespondConflict(w, msgEmailTaken)
		case errors.Is(err, domain.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.UserMessage(err))
		default:
			h.logger.Error("POST /staff - Failed to register staff: %v", err)
			handlers.RespondDomainError(w, err, msgStorageUnavailable)
		}
		return
	}

	h.logger.Info("POST /staff - Staff registered: id=%d by staff_id=%d", result.ID, caller.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
	"github.com/m04kA/barber-booking/internal/api/middleware"
	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAuthRequired       = "требуется авторизация сотрудника"
	msgNameTaken          = "услуга с таким названием уже существует"
	msgStorageUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staff, ok := middleware.GetStaff(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAuthRequired)
		return
	}

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), staff, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /services - Name taken: %q", req.Name)
			handlers.RespondConflict(w, msgNameTaken)
		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("POST /services - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.UserMessage(err))
		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondDomainError(w, err, msgStorageUnavailable)
		}
		return
	}

	h.logger.Info("POST /services - Service created: id=%d, staff_id=%d", result.ID, staff.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

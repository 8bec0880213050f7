package list_services

import (
	"net/http"

	"github.com/m04kA/barber-booking/internal/api/handlers"
)

const msgStorageUnavailable = "каталог временно недоступен"

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

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondDomainError(w, err, msgStorageUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

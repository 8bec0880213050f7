package list_services

import (
	"context"

	"github.com/m04kA/barber-booking/internal/service/bookings/models"
)

type CatalogService interface {
	ListServices(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

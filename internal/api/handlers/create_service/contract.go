package create_service

import (
	"context"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, caller *domain.StaffIdentity, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

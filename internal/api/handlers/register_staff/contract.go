package register_staff

import (
	"context"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/staff/models"
)

type StaffService interface {
	Register(ctx context.Context, caller *domain.StaffIdentity, req *models.RegisterRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

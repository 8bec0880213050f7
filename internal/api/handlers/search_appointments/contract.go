package search_appointments

import (
	"context"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
)

type BookingService interface {
	SearchByClient(ctx context.Context, caller *domain.StaffIdentity, name string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

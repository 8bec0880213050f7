package list_appointments

import (
	"context"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/bookings/models"
)

type BookingService interface {
	ListForStaff(ctx context.Context, caller *domain.StaffIdentity, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

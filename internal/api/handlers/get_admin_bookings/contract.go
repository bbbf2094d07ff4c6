package get_admin_bookings

import (
	"context"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

type BookingsService interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

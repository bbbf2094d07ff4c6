package get_booking

import (
	"context"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

type BookingsService interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

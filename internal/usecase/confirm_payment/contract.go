package confirm_payment

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/integrations/paymentgw"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, paymentTime *time.Time) (*domain.Booking, error)
}

// PaymentGateway интерфейс клиента платёжного шлюза
type PaymentGateway interface {
	GetOrderPayments(ctx context.Context, orderID string) ([]paymentgw.Payment, error)
}

// Mailer интерфейс отправки писем
type Mailer interface {
	SendBookingConfirmation(b *domain.Booking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

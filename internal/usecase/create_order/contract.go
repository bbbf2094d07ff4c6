package create_order

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/integrations/paymentgw"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, paymentTime *time.Time) (*domain.Booking, error)
}

// PaymentGateway интерфейс клиента платёжного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req *paymentgw.CreateOrderRequest) (*paymentgw.Order, error)
}

// OTPStore интерфейс хранилища одноразовых кодов
type OTPStore interface {
	IsVerified(ctx context.Context, email string) (bool, error)
	ClearVerified(ctx context.Context, email string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

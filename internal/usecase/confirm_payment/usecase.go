package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/booking"
	gwClient "github.com/m04kA/GH-BookingService/internal/integrations/paymentgw"
)

// UseCase use case подтверждения платежа
// Единая точка для вебхука шлюза и ручной верификации со страницы статуса:
// статус всегда перепроверяется у шлюза, данным вебхука не доверяем
type UseCase struct {
	bookingRepo  BookingRepository
	gateway      PaymentGateway
	mailer       Mailer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		mailer:       mailer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения платежа
// Идемпотентен: повторный вызов для уже рассчитанного заказа возвращает
// текущее состояние и не отправляет письмо повторно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, fmt.Errorf("%w: orderID is required", ErrInvalidInput)
	}

	uc.logger.Info("ConfirmPayment: verifying order %s", req.OrderID)

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmPayment: order %s not found", req.OrderID)
			return nil, ErrOrderNotFound
		}
		uc.logger.Error("ConfirmPayment: failed to get booking %s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Уже рассчитанные заказы не трогаем
	if booking.IsSettled() {
		uc.logger.Info("ConfirmPayment: order %s already settled (payment=%s)", req.OrderID, booking.PaymentStatus)
		return toResponse(booking), nil
	}

	// 3. Запрашиваем статус платежа у шлюза
	payments, err := uc.gateway.GetOrderPayments(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gwClient.ErrOrderNotFound) {
			uc.logger.Warn("ConfirmPayment: order %s not found in gateway", req.OrderID)
			return nil, ErrOrderNotFound
		}
		uc.logger.Error("ConfirmPayment: gateway error for order %s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: gateway error: %v", ErrInternal, err)
	}

	if len(payments) == 0 {
		uc.logger.Warn("ConfirmPayment: no payments found for order %s", req.OrderID)
		return nil, ErrPaymentNotFound
	}

	// 4. Определяем итоговый статус платежа
	status, paymentTime := settle(payments, uc.timeProvider.Now())
	if status == domain.PaymentPending {
		uc.logger.Info("ConfirmPayment: order %s still pending", req.OrderID)
		return toResponse(booking), nil
	}

	// 5. Обновляем статус: PAID подтверждает бронирование, FAILED отменяет
	updated, err := uc.bookingRepo.UpdatePaymentStatus(ctx, req.OrderID, status, paymentTime)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to update status for order %s: %v", req.OrderID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmPayment: order %s settled, payment=%s, booking=%s",
		req.OrderID, updated.PaymentStatus, updated.BookingStatus)

	// 6. На подтверждение отправляем письмо
	// Ошибка отправки не откатывает подтверждение - статус уже зафиксирован
	if updated.BookingStatus == domain.StatusConfirmed {
		if err := uc.mailer.SendBookingConfirmation(updated); err != nil {
			uc.logger.Error("ConfirmPayment: failed to send confirmation email for order %s: %v", req.OrderID, err)
		}
	}

	return toResponse(updated), nil
}

// settle сводит список платежей к итоговому статусу заказа
// Любой успешный платёж означает оплату; заказ без успешных платежей,
// но с окончательно неуспешными - неоплачен; иначе ждём дальше
func settle(payments []gwClient.Payment, now time.Time) (domain.PaymentStatus, *time.Time) {
	hasPending := false

	for _, p := range payments {
		switch p.PaymentStatus {
		case gwClient.PaymentStatusSuccess:
			paidAt := now
			if t, err := time.Parse(time.RFC3339, p.PaymentTime); err == nil {
				paidAt = t
			}
			return domain.PaymentPaid, &paidAt
		case gwClient.PaymentStatusPending:
			hasPending = true
		}
	}

	if hasPending {
		return domain.PaymentPending, nil
	}
	return domain.PaymentFailed, nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		OrderID:       b.OrderID,
		PaymentStatus: string(b.PaymentStatus),
		BookingStatus: string(b.BookingStatus),
		FlatNumber:    b.FlatNumber,
		TotalAmount:   b.TotalAmount,
		PaymentTime:   b.PaymentTime,
	}
}

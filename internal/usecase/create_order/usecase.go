package create_order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/integrations/paymentgw"
	"github.com/m04kA/GH-BookingService/internal/service/availability"
)

// UseCase use case создания заказа бронирования
//
// Порядок операций принципиален:
//  1. квартира резервируется вставкой бронирования в сериализуемой транзакции
//     (повторная проверка доступности + вставка видят один снимок данных);
//  2. только после фиксации транзакции создается заказ в платёжном шлюзе;
//  3. если шлюз недоступен, бронирование помечается FAILED -> CANCELLED,
//     и квартира освобождается.
//
// Так невозможна ни двойная бронь, ни оплаченный заказ без бронирования.
type UseCase struct {
	bookingRepo  BookingRepository
	gateway      PaymentGateway
	otpStore     OTPStore
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	frontendURL string
	backendURL  string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	otpStore OTPStore,
	txManager TransactionManager,
	frontendURL string,
	backendURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		otpStore:     otpStore,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		frontendURL:  frontendURL,
		backendURL:   backendURL,
	}
}

// Execute выполняет use case создания заказа бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: email=%s, roomType=%s, dates=%s..%s, guests=%d",
		req.CustomerEmail, req.RoomType,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация дат
	now := uc.timeProvider.Now()
	if err := validateDates(req.CheckIn, req.CheckOut, now); err != nil {
		uc.logger.Warn("CreateOrder: date validation failed: %v", err)
		return nil, err
	}

	// 3. Email должен быть подтверждён OTP-кодом
	verified, err := uc.otpStore.IsVerified(ctx, req.CustomerEmail)
	if err != nil {
		uc.logger.Error("CreateOrder: failed to check OTP verification: %v", err)
		return nil, fmt.Errorf("%w: failed to check verification: %v", ErrInternal, err)
	}
	if !verified {
		uc.logger.Warn("CreateOrder: email %s is not verified", req.CustomerEmail)
		return nil, ErrEmailNotVerified
	}

	// 4. Считаем стоимость проживания
	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	totalAmount := float64(nights) * domain.RoomPrices[req.RoomType]

	orderID := fmt.Sprintf("order_%s", uuid.NewString())

	var created *domain.Booking

	// 5. Резервируем квартиру и создаем бронирование в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Загружаем все влияющие на доступность бронирования с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{OnlyBlocking: true})
		if err != nil {
			uc.logger.Error("CreateOrder: failed to load bookings: %v", err)
			return fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}

		// 5.2. Повторно проверяем доступность: показанная пользователю
		// доступность носила справочный характер
		freeFlats, err := availability.AvailableFlatsForRange(checkIn, checkOut, bookings)
		if err != nil {
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if len(freeFlats) == 0 {
			uc.logger.Warn("CreateOrder: no flats available for %s..%s",
				checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return ErrNoFlatsAvailable
		}

		// 5.3. Назначаем первую свободную квартиру в каноническом порядке
		flat := freeFlats[0]

		booking := &domain.Booking{
			OrderID:         orderID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			RoomType:        req.RoomType,
			RoomTitle:       domain.RoomTitles[req.RoomType],
			FlatNumber:      &flat,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Guests:          req.Guests,
			TotalAmount:     totalAmount,
			PaymentStatus:   domain.PaymentPending,
			BookingStatus:   domain.StatusUpcoming,
			SpecialRequests: req.SpecialRequests,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		uc.logger.Info("CreateOrder: flat %s reserved for order %s", flat, orderID)
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Создаем заказ в платёжном шлюзе
	order, err := uc.gateway.CreateOrder(ctx, &paymentgw.CreateOrderRequest{
		OrderID:       orderID,
		OrderAmount:   totalAmount,
		OrderCurrency: domain.Currency,
		CustomerDetails: paymentgw.CustomerDetails{
			CustomerID:    fmt.Sprintf("cust_%d", created.ID),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
		},
		OrderMeta: paymentgw.OrderMeta{
			ReturnURL: fmt.Sprintf("%s/payment/success?order_id=%s", uc.frontendURL, orderID),
			NotifyURL: fmt.Sprintf("%s/api/v1/payments/webhook", uc.backendURL),
		},
	})
	if err != nil {
		uc.logger.Error("CreateOrder: payment gateway failed for order %s: %v", orderID, err)

		// Компенсация: освобождаем квартиру, помечая бронирование отменённым
		if _, cancelErr := uc.bookingRepo.UpdatePaymentStatus(ctx, orderID, domain.PaymentFailed, nil); cancelErr != nil {
			uc.logger.Error("CreateOrder: failed to cancel booking %s after gateway error: %v", orderID, cancelErr)
		}

		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	// 7. Снимаем отметку подтверждения: один подтверждённый email - один заказ
	if err := uc.otpStore.ClearVerified(ctx, req.CustomerEmail); err != nil {
		// Не критично: отметка истечёт сама по TTL
		uc.logger.Warn("CreateOrder: failed to clear verification flag for %s: %v", req.CustomerEmail, err)
	}

	uc.logger.Info("CreateOrder: order %s created, flat=%s, amount=%.2f %s",
		orderID, *created.FlatNumber, totalAmount, domain.Currency)

	return &Response{
		OrderID:          orderID,
		PaymentSessionID: order.PaymentSessionID,
		FlatNumber:       *created.FlatNumber,
		RoomTitle:        created.RoomTitle,
		CheckIn:          created.CheckIn,
		CheckOut:         created.CheckOut,
		Nights:           nights,
		TotalAmount:      totalAmount,
		Currency:         domain.Currency,
		PaymentStatus:    string(created.PaymentStatus),
		BookingStatus:    string(created.BookingStatus),
	}, nil
}

package confirm_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/booking"
	gwClient "github.com/m04kA/GH-BookingService/internal/integrations/paymentgw"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, paymentTime *time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, orderID, status, paymentTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) GetOrderPayments(ctx context.Context, orderID string) ([]gwClient.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gwClient.Payment), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendBookingConfirmation(b *domain.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

type MockTimeProvider struct {
	now time.Time
}

func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *MockBookingRepository, gw *MockPaymentGateway, mailer *MockMailer) *UseCase {
	return &UseCase{
		bookingRepo:  repo,
		gateway:      gw,
		mailer:       mailer,
		timeProvider: &MockTimeProvider{now: time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC)},
		logger:       noopLogger{},
	}
}

func pendingBooking(orderID string) *domain.Booking {
	flat := "101"
	return &domain.Booking{
		ID:            1,
		OrderID:       orderID,
		FlatNumber:    &flat,
		TotalAmount:   13437,
		PaymentStatus: domain.PaymentPending,
		BookingStatus: domain.StatusUpcoming,
	}
}

// ============================ Тесты для UseCase ============================

func TestConfirmPayment_SuccessfulPayment(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	mailer := &MockMailer{}
	uc := newTestUseCase(repo, gw, mailer)

	ctx := context.Background()
	booking := pendingBooking("order_1")

	confirmed := *booking
	confirmed.PaymentStatus = domain.PaymentPaid
	confirmed.BookingStatus = domain.StatusConfirmed

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()
	gw.On("GetOrderPayments", ctx, "order_1").Return([]gwClient.Payment{
		{PaymentStatus: gwClient.PaymentStatusSuccess, PaymentTime: "2025-07-08T11:30:00+05:30"},
	}, nil).Once()
	repo.On("UpdatePaymentStatus", ctx, "order_1", domain.PaymentPaid, mock.AnythingOfType("*time.Time")).
		Return(&confirmed, nil).Once()
	mailer.On("SendBookingConfirmation", &confirmed).Return(nil).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	assert.Equal(t, string(domain.StatusConfirmed), resp.BookingStatus)

	repo.AssertExpectations(t)
	gw.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

// Время платежа берётся из ответа шлюза, а не из текущего времени
func TestConfirmPayment_UsesGatewayPaymentTime(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	mailer := &MockMailer{}
	uc := newTestUseCase(repo, gw, mailer)

	ctx := context.Background()
	booking := pendingBooking("order_1")

	expected, err := time.Parse(time.RFC3339, "2025-07-08T11:30:00+05:30")
	require.NoError(t, err)

	confirmed := *booking
	confirmed.PaymentStatus = domain.PaymentPaid
	confirmed.BookingStatus = domain.StatusConfirmed

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()
	gw.On("GetOrderPayments", ctx, "order_1").Return([]gwClient.Payment{
		{PaymentStatus: gwClient.PaymentStatusSuccess, PaymentTime: "2025-07-08T11:30:00+05:30"},
	}, nil).Once()
	repo.On("UpdatePaymentStatus", ctx, "order_1", domain.PaymentPaid, mock.MatchedBy(func(ts *time.Time) bool {
		return ts != nil && ts.Equal(expected)
	})).Return(&confirmed, nil).Once()
	mailer.On("SendBookingConfirmation", &confirmed).Return(nil).Once()

	_, err = uc.Execute(ctx, &Request{OrderID: "order_1"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestConfirmPayment_FailedPayment(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	mailer := &MockMailer{}
	uc := newTestUseCase(repo, gw, mailer)

	ctx := context.Background()
	booking := pendingBooking("order_1")

	cancelled := *booking
	cancelled.PaymentStatus = domain.PaymentFailed
	cancelled.BookingStatus = domain.StatusCancelled

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()
	gw.On("GetOrderPayments", ctx, "order_1").Return([]gwClient.Payment{
		{PaymentStatus: gwClient.PaymentStatusFailed},
	}, nil).Once()
	repo.On("UpdatePaymentStatus", ctx, "order_1", domain.PaymentFailed, (*time.Time)(nil)).
		Return(&cancelled, nil).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentFailed), resp.PaymentStatus)
	assert.Equal(t, string(domain.StatusCancelled), resp.BookingStatus)

	// Письмо при отмене не отправляется
	mailer.AssertNotCalled(t, "SendBookingConfirmation")
	repo.AssertExpectations(t)
}

// Платёж ещё обрабатывается - статус не трогаем
func TestConfirmPayment_PendingPayment(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	mailer := &MockMailer{}
	uc := newTestUseCase(repo, gw, mailer)

	ctx := context.Background()
	booking := pendingBooking("order_1")

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()
	gw.On("GetOrderPayments", ctx, "order_1").Return([]gwClient.Payment{
		{PaymentStatus: gwClient.PaymentStatusPending},
	}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	repo.AssertNotCalled(t, "UpdatePaymentStatus")
	mailer.AssertNotCalled(t, "SendBookingConfirmation")
}

// Любой успешный платёж перевешивает неуспешные в списке
func TestConfirmPayment_MixedPaymentsSuccessWins(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	mailer := &MockMailer{}
	uc := newTestUseCase(repo, gw, mailer)

	ctx := context.Background()
	booking := pendingBooking("order_1")

	confirmed := *booking
	confirmed.PaymentStatus = domain.PaymentPaid
	confirmed.BookingStatus = domain.StatusConfirmed

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()
	gw.On("GetOrderPayments", ctx, "order_1").Return([]gwClient.Payment{
		{PaymentStatus: gwClient.PaymentStatusFailed},
		{PaymentStatus: gwClient.PaymentStatusSuccess, PaymentTime: "2025-07-08T11:30:00+05:30"},
	}, nil).Once()
	repo.On("UpdatePaymentStatus", ctx, "order_1", domain.PaymentPaid, mock.AnythingOfType("*time.Time")).
		Return(&confirmed, nil).Once()
	mailer.On("SendBookingConfirmation", &confirmed).Return(nil).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
}

// Идемпотентность: уже рассчитанный заказ не перепроверяется у шлюза
func TestConfirmPayment_AlreadySettled(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	mailer := &MockMailer{}
	uc := newTestUseCase(repo, gw, mailer)

	ctx := context.Background()
	booking := pendingBooking("order_1")
	booking.PaymentStatus = domain.PaymentPaid
	booking.BookingStatus = domain.StatusConfirmed

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	gw.AssertNotCalled(t, "GetOrderPayments")
	repo.AssertNotCalled(t, "UpdatePaymentStatus")
	mailer.AssertNotCalled(t, "SendBookingConfirmation")
}

func TestConfirmPayment_OrderNotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	uc := newTestUseCase(repo, gw, &MockMailer{})

	ctx := context.Background()
	repo.On("GetByOrderID", ctx, "order_missing").Return(nil, bookingRepo.ErrBookingNotFound).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_missing"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestConfirmPayment_NoPayments(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	uc := newTestUseCase(repo, gw, &MockMailer{})

	ctx := context.Background()
	booking := pendingBooking("order_1")

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()
	gw.On("GetOrderPayments", ctx, "order_1").Return([]gwClient.Payment{}, nil).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_1"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

// Ошибка отправки письма не откатывает подтверждение
func TestConfirmPayment_MailerFailureDoesNotFail(t *testing.T) {
	repo := &MockBookingRepository{}
	gw := &MockPaymentGateway{}
	mailer := &MockMailer{}
	uc := newTestUseCase(repo, gw, mailer)

	ctx := context.Background()
	booking := pendingBooking("order_1")

	confirmed := *booking
	confirmed.PaymentStatus = domain.PaymentPaid
	confirmed.BookingStatus = domain.StatusConfirmed

	repo.On("GetByOrderID", ctx, "order_1").Return(booking, nil).Once()
	gw.On("GetOrderPayments", ctx, "order_1").Return([]gwClient.Payment{
		{PaymentStatus: gwClient.PaymentStatusSuccess, PaymentTime: "2025-07-08T11:30:00+05:30"},
	}, nil).Once()
	repo.On("UpdatePaymentStatus", ctx, "order_1", domain.PaymentPaid, mock.AnythingOfType("*time.Time")).
		Return(&confirmed, nil).Once()
	mailer.On("SendBookingConfirmation", &confirmed).Return(errors.New("smtp unreachable")).Once()

	resp, err := uc.Execute(ctx, &Request{OrderID: "order_1"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	mailer.AssertExpectations(t)
}

func TestConfirmPayment_EmptyOrderID(t *testing.T) {
	uc := newTestUseCase(&MockBookingRepository{}, &MockPaymentGateway{}, &MockMailer{})

	resp, err := uc.Execute(context.Background(), &Request{OrderID: "  "})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

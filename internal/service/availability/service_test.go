package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
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

func newTestService(repo *MockBookingRepository, now time.Time) *Service {
	return &Service{
		bookingRepo:  repo,
		timeProvider: &MockTimeProvider{now: now},
		logger:       noopLogger{},
	}
}

// ============================ Тесты для Service ============================

func TestService_UnitCounts_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
	}

	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(bookings, nil).Once()

	counts, err := svc.UnitCounts(ctx, date("2025-07-08"))

	require.NoError(t, err)
	assert.Equal(t, domain.TotalFlats-1, counts[domain.RoomTypeStandard])
	repo.AssertExpectations(t)
}

// Нулевое asOf означает "сейчас" - берётся время из TimeProvider
func TestService_UnitCounts_ZeroAsOfUsesNow(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
	}

	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(bookings, nil).Once()

	counts, err := svc.UnitCounts(ctx, time.Time{})

	require.NoError(t, err)
	assert.Equal(t, domain.TotalFlats-1, counts[domain.RoomTypeStandard])
	repo.AssertExpectations(t)
}

func TestService_UnitCounts_RepositoryError(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(nil, errors.New("connection refused")).Once()

	_, err := svc.UnitCounts(ctx, date("2025-07-08"))

	assert.ErrorIs(t, err, ErrInternal)
	repo.AssertExpectations(t)
}

func TestService_Board_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
		testBooking("102", "2025-07-08", "2025-07-09", domain.StatusUpcoming),
	}

	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(bookings, nil).Once()

	board, err := svc.Board(ctx, date("2025-07-08"))

	require.NoError(t, err)
	assert.Equal(t, date("2025-07-08"), board.AsOf)
	assert.Len(t, board.Flats, domain.TotalFlats)
	assert.Equal(t, 2, board.OccupiedCount)
	require.NotNil(t, board.NextAvailableFlat)
	assert.Equal(t, "103", *board.NextAvailableFlat)
	repo.AssertExpectations(t)
}

func TestService_Board_FullHouse(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	bookings := make([]*domain.Booking, 0, domain.TotalFlats)
	for _, flat := range domain.AllFlats {
		bookings = append(bookings, testBooking(flat, "2025-07-01", "2025-07-31", domain.StatusConfirmed))
	}

	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(bookings, nil).Once()

	board, err := svc.Board(ctx, date("2025-07-08"))

	require.NoError(t, err)
	assert.Equal(t, domain.TotalFlats, board.OccupiedCount)
	assert.Nil(t, board.NextAvailableFlat)
	repo.AssertExpectations(t)
}

func TestService_NextFlat_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
	}

	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(bookings, nil).Once()

	flat, ok, err := svc.NextFlat(ctx, date("2025-07-08"))

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "102", flat)
	repo.AssertExpectations(t)
}

func TestService_NextFlat_FullHouse(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	bookings := make([]*domain.Booking, 0, domain.TotalFlats)
	for _, flat := range domain.AllFlats {
		bookings = append(bookings, testBooking(flat, "2025-07-01", "2025-07-31", domain.StatusConfirmed))
	}

	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(bookings, nil).Once()

	flat, ok, err := svc.NextFlat(ctx, date("2025-07-08"))

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", flat)
}

func TestService_AvailableFlats_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	ctx := context.Background()
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-08", "2025-07-10", domain.StatusConfirmed),
	}

	repo.On("List", ctx, domain.BookingsFilter{OnlyBlocking: true}).Return(bookings, nil).Once()

	flats, err := svc.AvailableFlats(ctx, date("2025-07-08"), date("2025-07-09"))

	require.NoError(t, err)
	assert.Len(t, flats, domain.TotalFlats-1)
	assert.NotContains(t, flats, "101")
	repo.AssertExpectations(t)
}

// Невалидный интервал отсекается до похода в репозиторий
func TestService_AvailableFlats_InvalidInterval(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := newTestService(repo, date("2025-07-08"))

	_, err := svc.AvailableFlats(context.Background(), date("2025-07-09"), date("2025-07-08"))

	assert.ErrorIs(t, err, ErrInvalidInterval)
	repo.AssertNotCalled(t, "List")
}

package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// Service сервис доступности: загружает снимок бронирований из репозитория
// и применяет к нему чистые функции расчёта (engine.go)
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// FlatBoard сводка занятости: статус каждой квартиры плюс следующая свободная
type FlatBoard struct {
	AsOf              time.Time
	Flats             []domain.FlatStatus
	NextAvailableFlat *string
	OccupiedCount     int
}

// UnitCounts возвращает количество свободных квартир по типам номеров на дату
// asOf; нулевое время означает "сейчас"
func (s *Service) UnitCounts(ctx context.Context, asOf time.Time) (map[domain.RoomType]int, error) {
	if asOf.IsZero() {
		asOf = s.timeProvider.Now()
	}

	bookings, err := s.loadBlocking(ctx)
	if err != nil {
		return nil, err
	}

	counts := UnitCounts(bookings, asOf)
	s.logger.Info("UnitCounts: %d bookings scanned, %d units available as of %s",
		len(bookings), counts[domain.RoomTypeStandard], asOf.Format(domain.DateFormat))
	return counts, nil
}

// Board возвращает занятость всех квартир на дату asOf; нулевое время
// означает "сейчас"
func (s *Service) Board(ctx context.Context, asOf time.Time) (*FlatBoard, error) {
	if asOf.IsZero() {
		asOf = s.timeProvider.Now()
	}

	bookings, err := s.loadBlocking(ctx)
	if err != nil {
		return nil, err
	}

	statuses := FlatStatuses(bookings, asOf)

	occupied := 0
	for _, st := range statuses {
		if st.Occupied {
			occupied++
		}
	}

	board := &FlatBoard{
		AsOf:          domain.DateOnly(asOf),
		Flats:         statuses,
		OccupiedCount: occupied,
	}

	if next, ok := NextAvailableFlat(bookings, asOf); ok {
		board.NextAvailableFlat = &next
	}

	s.logger.Info("Board: %d/%d flats occupied as of %s", occupied, domain.TotalFlats, asOf.Format(domain.DateFormat))
	return board, nil
}

// NextFlat возвращает первую свободную на дату asOf квартиру в каноническом
// порядке; ok=false означает, что заняты все квартиры. Нулевое время
// означает "сейчас"
func (s *Service) NextFlat(ctx context.Context, asOf time.Time) (string, bool, error) {
	if asOf.IsZero() {
		asOf = s.timeProvider.Now()
	}

	bookings, err := s.loadBlocking(ctx)
	if err != nil {
		return "", false, err
	}

	flat, ok := NextAvailableFlat(bookings, asOf)
	s.logger.Info("NextFlat: flat=%q, ok=%t as of %s", flat, ok, asOf.Format(domain.DateFormat))
	return flat, ok, nil
}

// AvailableFlats возвращает свободные квартиры на запрошенный интервал дат
func (s *Service) AvailableFlats(ctx context.Context, checkIn, checkOut time.Time) ([]string, error) {
	if err := ValidateInterval(checkIn, checkOut); err != nil {
		s.logger.Warn("AvailableFlats: invalid interval %s..%s",
			checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
		return nil, err
	}

	bookings, err := s.loadBlocking(ctx)
	if err != nil {
		return nil, err
	}

	flats, err := AvailableFlatsForRange(checkIn, checkOut, bookings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AvailableFlats: %d flats free for %s..%s",
		len(flats), checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
	return flats, nil
}

func (s *Service) loadBlocking(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{OnlyBlocking: true})
	if err != nil {
		s.logger.Error("availability: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}
	return bookings, nil
}

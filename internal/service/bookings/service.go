package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GH-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/booking"
)

// Service сервис чтения бронирований: статус для гостя и списки для админки
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByOrderID возвращает бронирование по ID заказа
func (s *Service) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("bookings: failed to get booking %s: %v", orderID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// ListAll возвращает все бронирования, сначала новые
func (s *Service) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	list, err := s.bookingRepo.List(ctx, domain.BookingsFilter{NewestFirst: true})
	if err != nil {
		s.logger.Error("bookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}
	s.logger.Info("bookings: listed %d bookings", len(list))
	return list, nil
}

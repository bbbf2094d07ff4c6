package create_order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/service/availability"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if !emailRegexp.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if !req.RoomType.IsValid() {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, req.RoomType)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests too long", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет интервал проживания
func validateDates(checkIn, checkOut, now time.Time) error {
	if err := availability.ValidateInterval(checkIn, checkOut); err != nil {
		return ErrInvalidInterval
	}

	if domain.DateOnly(checkIn).Before(domain.DateOnly(now)) {
		return ErrDateInPast
	}

	nights := int(domain.DateOnly(checkOut).Sub(domain.DateOnly(checkIn)).Hours() / 24)
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}

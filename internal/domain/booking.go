package domain

import "time"

// PaymentStatus represents the state of the payment behind a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "UPCOMING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// RoomType represents a pricing tier. Any room type, regardless of tier,
// occupies one entire flat for the duration of the stay.
type RoomType string

const (
	RoomType2BHK     RoomType = "2bhk"
	RoomType1BHK     RoomType = "1bhk"
	RoomTypeStandard RoomType = "standard"
)

// IsValid returns true if the room type is one of the known tiers
func (t RoomType) IsValid() bool {
	switch t {
	case RoomType2BHK, RoomType1BHK, RoomTypeStandard:
		return true
	}
	return false
}

// Booking represents a hotel booking in the system
type Booking struct {
	ID      int64
	OrderID string // ID заказа в платёжном шлюзе, уникален

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	RoomType   RoomType
	RoomTitle  string
	FlatNumber *string // назначенная квартира; nil до назначения

	CheckIn  time.Time // дата заезда (без времени суток)
	CheckOut time.Time // дата выезда; всегда CheckIn < CheckOut

	Guests      int
	TotalAmount float64

	PaymentStatus PaymentStatus
	BookingStatus BookingStatus
	BookingDate   time.Time

	SpecialRequests *string
	PaymentTime     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksAvailability returns true if the booking still reserves its flat
// for date-range availability checks. Cancelled bookings never block;
// completed ones are history and do not block either.
func (b *Booking) BlocksAvailability() bool {
	return b.BookingStatus != StatusCancelled && b.BookingStatus != StatusCompleted
}

// OccupiesOn returns true if the flat behind this booking is occupied on the
// given date: the booking is in an active stay status and the date falls
// inside the half-open interval [CheckIn, CheckOut).
func (b *Booking) OccupiesOn(asOf time.Time) bool {
	if b.BookingStatus != StatusConfirmed && b.BookingStatus != StatusUpcoming {
		return false
	}
	day := DateOnly(asOf)
	return !b.CheckIn.After(day) && day.Before(b.CheckOut)
}

// Nights returns the length of the stay in nights
func (b *Booking) Nights() int {
	return int(DateOnly(b.CheckOut).Sub(DateOnly(b.CheckIn)).Hours() / 24)
}

// IsSettled returns true if the payment reached a terminal state
func (b *Booking) IsSettled() bool {
	return b.PaymentStatus == PaymentPaid || b.PaymentStatus == PaymentFailed
}

// DateOnly strips the time-of-day component, keeping day granularity in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	FlatNumber    *string        // Фильтр по квартире (опционально)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	OnlyBlocking  bool           // Только бронирования, влияющие на доступность (не CANCELLED/COMPLETED)
	NewestFirst   bool           // Сортировка по дате создания (DESC) вместо канонической id ASC
	CustomerEmail *string        // Фильтр по email клиента (опционально)
}

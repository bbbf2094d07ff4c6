package get_admin_bookings

import (
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// BookingResponse полная карточка бронирования для админки,
// включая контакты гостя
type BookingResponse struct {
	ID              int64   `json:"id"`
	OrderID         string  `json:"orderId"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	RoomType        string  `json:"roomType"`
	RoomTitle       string  `json:"roomTitle"`
	FlatNumber      *string `json:"flatNumber,omitempty"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	TotalAmount     float64 `json:"totalAmount"`
	Currency        string  `json:"currency"`
	PaymentStatus   string  `json:"paymentStatus"`
	BookingStatus   string  `json:"bookingStatus"`
	BookingDate     string  `json:"bookingDate"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	PaymentTime     *string `json:"paymentTime,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// BookingsListResponse HTTP response model
type BookingsListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		OrderID:         b.OrderID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		RoomType:        string(b.RoomType),
		RoomTitle:       b.RoomTitle,
		FlatNumber:      b.FlatNumber,
		CheckIn:         b.CheckIn.Format(domain.DateFormat),
		CheckOut:        b.CheckOut.Format(domain.DateFormat),
		Nights:          b.Nights(),
		Guests:          b.Guests,
		TotalAmount:     b.TotalAmount,
		Currency:        domain.Currency,
		PaymentStatus:   string(b.PaymentStatus),
		BookingStatus:   string(b.BookingStatus),
		BookingDate:     b.BookingDate.Format(time.RFC3339),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}

	if b.PaymentTime != nil {
		formatted := b.PaymentTime.Format(time.RFC3339)
		resp.PaymentTime = &formatted
	}

	return resp
}

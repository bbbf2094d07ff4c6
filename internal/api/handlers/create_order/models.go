package create_order

import (
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	createOrder "github.com/m04kA/GH-BookingService/internal/usecase/create_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	RoomType        string  `json:"roomType"` // "2bhk" | "1bhk" | "standard"
	CheckIn         string  `json:"checkIn"`  // "2026-01-15"
	CheckOut        string  `json:"checkOut"` // "2026-01-18"
	Guests          int     `json:"guests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	OrderID          string  `json:"orderId"`
	PaymentSessionID string  `json:"paymentSessionId"`
	FlatNumber       string  `json:"flatNumber"`
	RoomTitle        string  `json:"roomTitle"`
	CheckIn          string  `json:"checkIn"`
	CheckOut         string  `json:"checkOut"`
	Nights           int     `json:"nights"`
	TotalAmount      float64 `json:"totalAmount"`
	Currency         string  `json:"currency"`
	PaymentStatus    string  `json:"paymentStatus"`
	BookingStatus    string  `json:"bookingStatus"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest() (*createOrder.Request, error) {
	// Парсим даты
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createOrder.Request{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		RoomType:        domain.RoomType(r.RoomType),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	return &OrderResponse{
		OrderID:          resp.OrderID,
		PaymentSessionID: resp.PaymentSessionID,
		FlatNumber:       resp.FlatNumber,
		RoomTitle:        resp.RoomTitle,
		CheckIn:          resp.CheckIn.Format(domain.DateFormat),
		CheckOut:         resp.CheckOut.Format(domain.DateFormat),
		Nights:           resp.Nights,
		TotalAmount:      resp.TotalAmount,
		Currency:         resp.Currency,
		PaymentStatus:    resp.PaymentStatus,
		BookingStatus:    resp.BookingStatus,
	}
}

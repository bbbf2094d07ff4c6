package verify_payment

import (
	"time"

	confirmPayment "github.com/m04kA/GH-BookingService/internal/usecase/confirm_payment"
)

// PaymentStatusResponse HTTP response model
type PaymentStatusResponse struct {
	OrderID       string  `json:"orderId"`
	PaymentStatus string  `json:"paymentStatus"`
	BookingStatus string  `json:"bookingStatus"`
	FlatNumber    *string `json:"flatNumber,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentTime   *string `json:"paymentTime,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *PaymentStatusResponse {
	out := &PaymentStatusResponse{
		OrderID:       resp.OrderID,
		PaymentStatus: resp.PaymentStatus,
		BookingStatus: resp.BookingStatus,
		FlatNumber:    resp.FlatNumber,
		TotalAmount:   resp.TotalAmount,
	}

	if resp.PaymentTime != nil {
		formatted := resp.PaymentTime.Format(time.RFC3339)
		out.PaymentTime = &formatted
	}

	return out
}

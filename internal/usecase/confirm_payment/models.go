package confirm_payment

import "time"

// Request модель запроса на подтверждение платежа
type Request struct {
	OrderID string // ID заказа платёжного шлюза
}

// Response модель ответа с итоговым статусом заказа
type Response struct {
	OrderID       string     // ID заказа
	PaymentStatus string     // Статус платежа (PENDING/PAID/FAILED)
	BookingStatus string     // Статус бронирования
	FlatNumber    *string    // Назначенная квартира
	TotalAmount   float64    // Сумма заказа
	PaymentTime   *time.Time // Время платежа (если оплачен)
}

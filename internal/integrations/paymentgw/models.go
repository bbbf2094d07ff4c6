package paymentgw

// CustomerDetails данные клиента для создания заказа
type CustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// OrderMeta служебные URL заказа
type OrderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
}

// CreateOrderRequest запрос на создание заказа в платёжном шлюзе
type CreateOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       OrderMeta       `json:"order_meta"`
}

// Order созданный заказ платёжного шлюза
// PaymentSessionID используется фронтендом для открытия hosted checkout
type Order struct {
	OrderID          string  `json:"order_id"`
	PaymentSessionID string  `json:"payment_session_id"`
	OrderAmount      float64 `json:"order_amount"`
	OrderCurrency    string  `json:"order_currency"`
	OrderStatus      string  `json:"order_status"`
}

// Payment платёж по заказу
type Payment struct {
	PaymentStatus  string  `json:"payment_status"`
	PaymentAmount  float64 `json:"payment_amount"`
	PaymentTime    string  `json:"payment_time"`
	PaymentMessage string  `json:"payment_message"`
}

// Статусы платежа, возвращаемые шлюзом
const (
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
	PaymentStatusPending = "PENDING"
)

// ErrorResponse модель ошибки от платёжного шлюза
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
}

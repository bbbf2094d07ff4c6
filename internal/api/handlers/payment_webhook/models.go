package payment_webhook

// WebhookPayload тело вебхука платёжного шлюза
// Из всего payload нужен только ID заказа - статус мы всё равно
// перепроверяем напрямую у шлюза
type WebhookPayload struct {
	Type string      `json:"type"`
	Data WebhookData `json:"data"`
}

type WebhookData struct {
	Order WebhookOrder `json:"order"`
}

type WebhookOrder struct {
	OrderID string `json:"order_id"`
}

package paymentgw

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден в платёжном шлюзе
	ErrOrderNotFound = errors.New("paymentgw client: order not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgw client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentgw client: invalid response")
)

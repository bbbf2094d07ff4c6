package confirm_payment

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("confirm_payment: order not found")

	// ErrPaymentNotFound возвращается, когда по заказу нет ни одного платежа
	ErrPaymentNotFound = errors.New("confirm_payment: no payments found for order")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)

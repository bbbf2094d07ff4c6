package create_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInvalidInterval возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidInterval = errors.New("create_order: check-in must be before check-out")

	// ErrDateInPast возвращается, когда дата заезда в прошлом
	ErrDateInPast = errors.New("create_order: check-in date is in the past")

	// ErrEmailNotVerified возвращается, когда email не прошёл OTP-подтверждение
	ErrEmailNotVerified = errors.New("create_order: email is not verified")

	// ErrNoFlatsAvailable возвращается, когда на запрошенные даты нет свободных квартир
	ErrNoFlatsAvailable = errors.New("create_order: no flats available for the requested dates")

	// ErrPaymentGateway возвращается, когда платёжный шлюз не смог создать заказ
	ErrPaymentGateway = errors.New("create_order: payment gateway error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)

package availability

import "errors"

var (
	// ErrInvalidInterval возвращается, когда checkIn >= checkOut
	ErrInvalidInterval = errors.New("availability: check-in must be before check-out")

	// ErrInvalidFlatNumber возвращается для квартиры вне фиксированного фонда
	ErrInvalidFlatNumber = errors.New("availability: unknown flat number")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)

package verify_otp

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("verify_otp: invalid input")

	// ErrCodeExpired возвращается, когда код не найден или истёк
	ErrCodeExpired = errors.New("verify_otp: code expired or not found")

	// ErrCodeMismatch возвращается при неверном коде
	ErrCodeMismatch = errors.New("verify_otp: code mismatch")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("verify_otp: internal error")
)

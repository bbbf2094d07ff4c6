package verify_otp

import "context"

// OTPStore интерфейс хранилища одноразовых кодов
type OTPStore interface {
	GetCode(ctx context.Context, email string) (string, error)
	DeleteCode(ctx context.Context, email string) error
	MarkVerified(ctx context.Context, email string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

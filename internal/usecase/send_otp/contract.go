package send_otp

import "context"

// OTPStore интерфейс хранилища одноразовых кодов
type OTPStore interface {
	SaveCode(ctx context.Context, email, code string) error
}

// Mailer интерфейс отправки писем
type Mailer interface {
	SendOTP(to, code string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

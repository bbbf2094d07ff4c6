package verify_otp

import "context"

type VerifyOTPUseCase interface {
	Execute(ctx context.Context, email, code string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package verify_otp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/GH-BookingService/internal/infra/otpstore"
)

// UseCase use case проверки одноразового кода
// После успешной проверки email помечается подтверждённым на время
// жизни флага, а сам код удаляется - повторно использовать его нельзя
type UseCase struct {
	otpStore OTPStore
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(otpStore OTPStore, logger Logger) *UseCase {
	return &UseCase{
		otpStore: otpStore,
		logger:   logger,
	}
}

// Execute сверяет присланный код с сохранённым и помечает email подтверждённым
func (uc *UseCase) Execute(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return fmt.Errorf("%w: email and code are required", ErrInvalidInput)
	}

	// 1. Достаём сохранённый код
	stored, err := uc.otpStore.GetCode(ctx, email)
	if err != nil {
		if errors.Is(err, otpstore.ErrCodeNotFound) {
			uc.logger.Warn("VerifyOTP: no active code for %s", email)
			return ErrCodeExpired
		}
		uc.logger.Error("VerifyOTP: failed to get code for %s: %v", email, err)
		return fmt.Errorf("%w: failed to get code: %v", ErrInternal, err)
	}

	// 2. Сравниваем за константное время
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		uc.logger.Warn("VerifyOTP: code mismatch for %s", email)
		return ErrCodeMismatch
	}

	// 3. Помечаем email подтверждённым и гасим код
	if err := uc.otpStore.MarkVerified(ctx, email); err != nil {
		uc.logger.Error("VerifyOTP: failed to mark %s verified: %v", email, err)
		return fmt.Errorf("%w: failed to mark verified: %v", ErrInternal, err)
	}

	if err := uc.otpStore.DeleteCode(ctx, email); err != nil {
		// Код и так истечёт по TTL, подтверждение уже состоялось
		uc.logger.Warn("VerifyOTP: failed to delete code for %s: %v", email, err)
	}

	uc.logger.Info("VerifyOTP: email %s verified", email)
	return nil
}

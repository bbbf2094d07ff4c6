package send_otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UseCase use case отправки одноразового кода на email
// Код генерируется на каждый запрос заново; повторная отправка
// перезаписывает предыдущий код
type UseCase struct {
	otpStore OTPStore
	mailer   Mailer
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(otpStore OTPStore, mailer Mailer, logger Logger) *UseCase {
	return &UseCase{
		otpStore: otpStore,
		mailer:   mailer,
		logger:   logger,
	}
}

// Execute генерирует 6-значный код, сохраняет его и отправляет письмом
func (uc *UseCase) Execute(ctx context.Context, email string) error {
	if !emailRegexp.MatchString(email) {
		uc.logger.Warn("SendOTP: invalid email %q", email)
		return ErrInvalidEmail
	}

	code, err := generateCode()
	if err != nil {
		uc.logger.Error("SendOTP: failed to generate code: %v", err)
		return fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
	}

	// Сначала сохраняем, потом отправляем: код из письма всегда действителен
	if err := uc.otpStore.SaveCode(ctx, email, code); err != nil {
		uc.logger.Error("SendOTP: failed to save code for %s: %v", email, err)
		return fmt.Errorf("%w: failed to save code: %v", ErrInternal, err)
	}

	if err := uc.mailer.SendOTP(email, code); err != nil {
		uc.logger.Error("SendOTP: failed to send email to %s: %v", email, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.logger.Info("SendOTP: code sent to %s", email)
	return nil
}

// generateCode возвращает случайный 6-значный код с ведущими нулями
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

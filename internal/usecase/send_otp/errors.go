package send_otp

import "errors"

var (
	// ErrInvalidEmail возвращается при некорректном адресе
	ErrInvalidEmail = errors.New("send_otp: invalid email address")

	// ErrSendFailed возвращается, когда письмо не удалось отправить
	ErrSendFailed = errors.New("send_otp: failed to send email")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_otp: internal error")
)

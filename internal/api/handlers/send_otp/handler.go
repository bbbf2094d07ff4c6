package send_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	sendOTP "github.com/m04kA/GH-BookingService/internal/usecase/send_otp"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "invalid email address"
	msgSendFailed         = "failed to send verification email"
	msgCodeSent           = "verification code sent"
)

type Handler struct {
	useCase SendOTPUseCase
	logger  Logger
}

func NewHandler(useCase SendOTPUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/otp/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/send - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Execute(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, sendOTP.ErrInvalidEmail):
			h.logger.Warn("POST /otp/send - Invalid email: %s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, sendOTP.ErrSendFailed):
			h.logger.Error("POST /otp/send - Failed to send email: email=%s, error=%v", req.Email, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSendFailed)

		default:
			h.logger.Error("POST /otp/send - Failed to send code: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /otp/send - Code sent: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, SendOTPResponse{Message: msgCodeSent})
}

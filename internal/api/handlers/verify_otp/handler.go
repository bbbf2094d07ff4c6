package verify_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	verifyOTP "github.com/m04kA/GH-BookingService/internal/usecase/verify_otp"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "email and code are required"
	msgCodeExpired        = "verification code expired, request a new one"
	msgCodeMismatch       = "incorrect verification code"
)

type Handler struct {
	useCase VerifyOTPUseCase
	logger  Logger
}

func NewHandler(useCase VerifyOTPUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/otp/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Execute(r.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, verifyOTP.ErrInvalidInput):
			h.logger.Warn("POST /otp/verify - Invalid input: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, verifyOTP.ErrCodeExpired):
			h.logger.Warn("POST /otp/verify - Code expired: email=%s", req.Email)
			handlers.RespondError(w, http.StatusGone, msgCodeExpired)

		case errors.Is(err, verifyOTP.ErrCodeMismatch):
			h.logger.Warn("POST /otp/verify - Code mismatch: email=%s", req.Email)
			handlers.RespondError(w, http.StatusUnauthorized, msgCodeMismatch)

		default:
			h.logger.Error("POST /otp/verify - Failed to verify code: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /otp/verify - Email verified: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, VerifyOTPResponse{Verified: true})
}

package verify_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	confirmPayment "github.com/m04kA/GH-BookingService/internal/usecase/confirm_payment"
)

const (
	msgMissingOrderID  = "orderId is required"
	msgOrderNotFound   = "order not found"
	msgPaymentNotFound = "no payments found for this order"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/{orderId}/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		handlers.RespondBadRequest(w, msgMissingOrderID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{OrderID: orderID})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrOrderNotFound):
			h.logger.Warn("GET /payments/{orderId}/verify - Order not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, confirmPayment.ErrPaymentNotFound):
			h.logger.Warn("GET /payments/{orderId}/verify - No payments: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("GET /payments/{orderId}/verify - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingOrderID)

		default:
			h.logger.Error("GET /payments/{orderId}/verify - Failed to verify: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments/{orderId}/verify - Verified: order_id=%s, payment=%s", orderID, result.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package payment_webhook

import (
	"net/http"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	confirmPayment "github.com/m04kA/GH-BookingService/internal/usecase/confirm_payment"
)

const msgInvalidRequestBody = "invalid webhook payload"

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

// Handle POST /api/v1/payments/webhook
// Шлюз ретраит вебхук при не-2xx ответе, поэтому на ошибки обработки
// отвечаем 200: статус платежа всё равно будет перепроверен при ручной
// верификации со страницы статуса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload WebhookPayload
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	orderID := payload.Data.Order.OrderID
	if orderID == "" {
		h.logger.Warn("POST /payments/webhook - Missing order_id in payload, type=%s", payload.Type)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.logger.Info("POST /payments/webhook - Received event: type=%s, order_id=%s", payload.Type, orderID)

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{OrderID: orderID})
	if err != nil {
		h.logger.Error("POST /payments/webhook - Failed to process order %s: %v", orderID, err)
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
		return
	}

	h.logger.Info("POST /payments/webhook - Order processed: order_id=%s, payment=%s, booking=%s",
		orderID, result.PaymentStatus, result.BookingStatus)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}

package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	createOrder "github.com/m04kA/GH-BookingService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid booking data"
	msgInvalidInterval    = "check-in date must be before check-out date"
	msgDateInPast         = "check-in date must not be in the past"
	msgEmailNotVerified   = "email is not verified, request an OTP first"
	msgNoFlatsAvailable   = "no flats available for the selected dates"
	msgPaymentGateway     = "payment service is temporarily unavailable"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /orders - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createOrder.ErrInvalidInterval):
			h.logger.Warn("POST /orders - Invalid interval: check_in=%s, check_out=%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createOrder.ErrDateInPast):
			h.logger.Warn("POST /orders - Check-in in the past: check_in=%s", req.CheckIn)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createOrder.ErrEmailNotVerified):
			h.logger.Warn("POST /orders - Email not verified: email=%s", req.CustomerEmail)
			handlers.RespondError(w, http.StatusForbidden, msgEmailNotVerified)

		case errors.Is(err, createOrder.ErrNoFlatsAvailable):
			h.logger.Warn("POST /orders - No flats available: check_in=%s, check_out=%s", req.CheckIn, req.CheckOut)
			handlers.RespondError(w, http.StatusConflict, msgNoFlatsAvailable)

		case errors.Is(err, createOrder.ErrPaymentGateway):
			h.logger.Error("POST /orders - Payment gateway error: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentGateway)

		default:
			h.logger.Error("POST /orders - Failed to create order: email=%s, error=%v", req.CustomerEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /orders - Order created successfully: order_id=%s, flat=%s, email=%s",
		result.OrderID, result.FlatNumber, req.CustomerEmail)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

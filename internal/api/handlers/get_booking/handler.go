package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	bookingsService "github.com/m04kA/GH-BookingService/internal/service/bookings"
)

const (
	msgMissingOrderID  = "orderId is required"
	msgBookingNotFound = "booking not found"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if orderID == "" {
		handlers.RespondBadRequest(w, msgMissingOrderID)
		return
	}

	booking, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{orderId} - Booking not found: order_id=%s", orderID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{orderId} - Failed to get booking: order_id=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{orderId} - Booking found: order_id=%s, status=%s", orderID, booking.BookingStatus)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}

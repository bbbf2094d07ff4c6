package get_admin_bookings

import (
	"net/http"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := BookingsListResponse{
		Bookings: make([]BookingResponse, 0, len(list)),
		Total:    len(list),
	}
	for _, b := range list {
		response.Bookings = append(response.Bookings, FromDomain(b))
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}

package get_next_flat

import (
	"net/http"
	"time"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/domain"
)

const (
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
	msgNoFreeFlats = "all flats are occupied"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/flats/next?date=2026-01-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var asOf time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/flats/next - Invalid date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		asOf = parsed
	}

	flat, ok, err := h.service.NextFlat(r.Context(), asOf)
	if err != nil {
		h.logger.Error("GET /admin/flats/next - Failed to get next flat: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !ok {
		h.logger.Info("GET /admin/flats/next - Full house")
		handlers.RespondNotFound(w, msgNoFreeFlats)
		return
	}

	h.logger.Info("GET /admin/flats/next - Next flat: %s", flat)
	handlers.RespondJSON(w, http.StatusOK, NextFlatResponse{FlatNumber: flat})
}

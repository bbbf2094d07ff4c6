package get_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

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

// Handle GET /api/v1/availability?date=2026-01-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	asOf := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		asOf = parsed
	}

	counts, err := h.service.UnitCounts(r.Context(), asOf)
	if err != nil {
		h.logger.Error("GET /availability - Failed to get unit counts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := AvailabilityResponse{
		Date:           domain.DateOnly(asOf).Format(domain.DateFormat),
		TotalFlats:     domain.TotalFlats,
		AvailableUnits: make(map[string]int, len(counts)),
	}
	for rt, n := range counts {
		response.AvailableUnits[string(rt)] = n
	}

	h.logger.Info("GET /availability - Availability for %s returned", response.Date)
	handlers.RespondJSON(w, http.StatusOK, response)
}

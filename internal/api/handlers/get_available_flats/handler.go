package get_available_flats

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/domain"
	availabilityService "github.com/m04kA/GH-BookingService/internal/service/availability"
)

const (
	msgMissingDates    = "checkIn and checkOut query parameters are required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInterval = "check-in date must be before check-out date"
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

// Handle GET /api/v1/flats/available?checkIn=2026-01-15&checkOut=2026-01-18
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawIn := r.URL.Query().Get("checkIn")
	rawOut := r.URL.Query().Get("checkOut")
	if rawIn == "" || rawOut == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	checkIn, err := time.Parse(domain.DateFormat, rawIn)
	if err != nil {
		h.logger.Warn("GET /flats/available - Invalid checkIn: %s", rawIn)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, rawOut)
	if err != nil {
		h.logger.Warn("GET /flats/available - Invalid checkOut: %s", rawOut)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	flats, err := h.service.AvailableFlats(r.Context(), checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInterval):
			h.logger.Warn("GET /flats/available - Invalid interval: %s..%s", rawIn, rawOut)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /flats/available - Failed to get flats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := AvailableFlatsResponse{
		CheckIn:  rawIn,
		CheckOut: rawOut,
		Flats:    flats,
		Count:    len(flats),
	}

	h.logger.Info("GET /flats/available - %d flats free for %s..%s", len(flats), rawIn, rawOut)
	handlers.RespondJSON(w, http.StatusOK, response)
}

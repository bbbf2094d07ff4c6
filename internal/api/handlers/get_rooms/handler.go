package get_rooms

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

// Handle GET /api/v1/rooms?date=2026-01-15
// Без параметра date доступность считается на текущий момент
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var asOf time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /rooms - Invalid date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		asOf = parsed
	}

	counts, err := h.service.UnitCounts(r.Context(), asOf)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to get unit counts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Каталог номеров в каноническом порядке типов
	response := RoomsResponse{Rooms: make([]RoomResponse, 0, len(domain.RoomTypes))}
	for _, rt := range domain.RoomTypes {
		response.Rooms = append(response.Rooms, RoomResponse{
			RoomType:       string(rt),
			Title:          domain.RoomTitles[rt],
			PricePerNight:  domain.RoomPrices[rt],
			Currency:       domain.Currency,
			AvailableUnits: counts[rt],
		})
	}

	h.logger.Info("GET /rooms - Returned %d room types", len(response.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}

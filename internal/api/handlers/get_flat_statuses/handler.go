package get_flat_statuses

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

// Handle GET /api/v1/admin/flats?date=2026-01-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var asOf time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/flats - Invalid date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		asOf = parsed
	}

	board, err := h.service.Board(r.Context(), asOf)
	if err != nil {
		h.logger.Error("GET /admin/flats - Failed to build board: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/flats - Board returned: %d/%d occupied", board.OccupiedCount, domain.TotalFlats)
	handlers.RespondJSON(w, http.StatusOK, FromBoard(board))
}

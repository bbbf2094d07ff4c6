package get_flat_statuses

import (
	"github.com/m04kA/GH-BookingService/internal/domain"
	availabilityService "github.com/m04kA/GH-BookingService/internal/service/availability"
)

// FlatStatusResponse статус одной квартиры
type FlatStatusResponse struct {
	FlatNumber string  `json:"flatNumber"`
	Floor      int     `json:"floor"`
	Occupied   bool    `json:"occupied"`
	BookedBy   *string `json:"bookedBy,omitempty"`
	CheckIn    *string `json:"checkIn,omitempty"`
	CheckOut   *string `json:"checkOut,omitempty"`
	RoomType   *string `json:"roomType,omitempty"`
}

// FlatBoardResponse HTTP response model: занятость всего фонда
type FlatBoardResponse struct {
	AsOf              string               `json:"asOf"`
	Flats             []FlatStatusResponse `json:"flats"`
	NextAvailableFlat *string              `json:"nextAvailableFlat,omitempty"`
	OccupiedCount     int                  `json:"occupiedCount"`
	TotalFlats        int                  `json:"totalFlats"`
}

// FromBoard конвертирует сводку сервиса в HTTP response
func FromBoard(board *availabilityService.FlatBoard) *FlatBoardResponse {
	resp := &FlatBoardResponse{
		AsOf:              board.AsOf.Format(domain.DateFormat),
		Flats:             make([]FlatStatusResponse, 0, len(board.Flats)),
		NextAvailableFlat: board.NextAvailableFlat,
		OccupiedCount:     board.OccupiedCount,
		TotalFlats:        domain.TotalFlats,
	}

	for _, st := range board.Flats {
		item := FlatStatusResponse{
			FlatNumber: st.FlatNumber,
			Floor:      st.Floor,
			Occupied:   st.Occupied,
			BookedBy:   st.BookedBy,
		}

		if st.CheckIn != nil {
			formatted := st.CheckIn.Format(domain.DateFormat)
			item.CheckIn = &formatted
		}
		if st.CheckOut != nil {
			formatted := st.CheckOut.Format(domain.DateFormat)
			item.CheckOut = &formatted
		}
		if st.RoomType != nil {
			rt := string(*st.RoomType)
			item.RoomType = &rt
		}

		resp.Flats = append(resp.Flats, item)
	}

	return resp
}

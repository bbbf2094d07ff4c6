package get_rooms

// RoomResponse описание типа номера с актуальной доступностью
type RoomResponse struct {
	RoomType       string  `json:"roomType"`
	Title          string  `json:"title"`
	PricePerNight  float64 `json:"pricePerNight"`
	Currency       string  `json:"currency"`
	AvailableUnits int     `json:"availableUnits"`
}

// RoomsResponse HTTP response model
type RoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

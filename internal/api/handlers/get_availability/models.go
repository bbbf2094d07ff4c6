package get_availability

// AvailabilityResponse HTTP response model: свободные квартиры по типам
// номеров на дату; все типы делят общий пул, поэтому значения совпадают
type AvailabilityResponse struct {
	Date           string         `json:"date"`
	TotalFlats     int            `json:"totalFlats"`
	AvailableUnits map[string]int `json:"availableUnits"`
}

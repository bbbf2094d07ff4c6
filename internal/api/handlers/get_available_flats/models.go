package get_available_flats

// AvailableFlatsResponse HTTP response model
type AvailableFlatsResponse struct {
	CheckIn  string   `json:"checkIn"`
	CheckOut string   `json:"checkOut"`
	Flats    []string `json:"flats"`
	Count    int      `json:"count"`
}

package get_next_flat

// NextFlatResponse HTTP response model
type NextFlatResponse struct {
	FlatNumber string `json:"flatNumber"`
}

package domain

import "time"

// AllFlats is the fixed inventory in canonical order: 3 floors, 4 flats per
// floor. "First available flat" selection always walks this order.
var AllFlats = []string{
	"101", "102", "103", "104",
	"201", "202", "203", "204",
	"301", "302", "303", "304",
}

// TotalFlats is the size of the fixed inventory
const TotalFlats = 12

// IsValidFlat returns true if the flat number belongs to the inventory
func IsValidFlat(flatNumber string) bool {
	for _, f := range AllFlats {
		if f == flatNumber {
			return true
		}
	}
	return false
}

// FlatFloor returns the floor encoded in the flat number (101 -> 1, 304 -> 3)
func FlatFloor(flatNumber string) int {
	if len(flatNumber) != 3 {
		return 0
	}
	return int(flatNumber[0] - '0')
}

// FlatStatus describes the point-in-time occupancy of a single flat
type FlatStatus struct {
	FlatNumber string
	Floor      int
	Occupied   bool

	// Данные текущего бронирования; заполняются только если Occupied
	BookedBy *string
	CheckIn  *time.Time
	CheckOut *time.Time
	RoomType *RoomType
}

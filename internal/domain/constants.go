package domain

// RoomPrices цены за ночь по типам номеров (INR)
// Статическая конфигурация процесса, не изменяется в рантайме
var RoomPrices = map[RoomType]float64{
	RoomType2BHK:     4479,
	RoomType1BHK:     3359,
	RoomTypeStandard: 2239,
}

// RoomTitles отображаемые названия типов номеров
var RoomTitles = map[RoomType]string{
	RoomType2BHK:     "2-BHK Apartment",
	RoomType1BHK:     "1-BHK Apartment",
	RoomTypeStandard: "Standard Room",
}

// RoomTypes канонический порядок типов номеров
var RoomTypes = []RoomType{RoomType2BHK, RoomType1BHK, RoomTypeStandard}

// Currency валюта всех платежей
const Currency = "INR"

// Business validation constants
const (
	MinGuests                = 1
	MaxGuests                = 10
	MaxStayNights            = 90
	MaxSpecialRequestsLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

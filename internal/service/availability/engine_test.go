package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// Хелперы для тестовых данных

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testBooking(flat, checkIn, checkOut string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		OrderID:       "order_" + flat + "_" + checkIn,
		CustomerName:  "Guest " + flat,
		RoomType:      domain.RoomTypeStandard,
		FlatNumber:    &flat,
		CheckIn:       date(checkIn),
		CheckOut:      date(checkOut),
		BookingStatus: status,
	}
}

// ============================ UnitCounts ============================

func TestUnitCounts_EmptyBookings(t *testing.T) {
	counts := UnitCounts(nil, date("2025-07-08"))

	for _, rt := range domain.RoomTypes {
		assert.Equal(t, domain.TotalFlats, counts[rt])
	}
}

// Все типы номеров делят общий пул квартир, поэтому счётчики совпадают
func TestUnitCounts_SameForAllRoomTypes(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
		testBooking("102", "2025-07-08", "2025-07-09", domain.StatusUpcoming),
	}

	counts := UnitCounts(bookings, date("2025-07-08"))

	assert.Equal(t, 10, counts[domain.RoomType2BHK])
	assert.Equal(t, 10, counts[domain.RoomType1BHK])
	assert.Equal(t, 10, counts[domain.RoomTypeStandard])
}

// Отменённые и завершённые бронирования не занимают квартиры
func TestUnitCounts_IgnoresCancelledAndCompleted(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusCancelled),
		testBooking("102", "2025-07-07", "2025-07-10", domain.StatusCompleted),
	}

	counts := UnitCounts(bookings, date("2025-07-08"))

	assert.Equal(t, domain.TotalFlats, counts[domain.RoomTypeStandard])
}

// Дата выезда не считается занятой: интервал полуоткрытый [checkIn, checkOut)
func TestUnitCounts_CheckOutDayIsFree(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-05", "2025-07-08", domain.StatusConfirmed),
	}

	counts := UnitCounts(bookings, date("2025-07-08"))

	assert.Equal(t, domain.TotalFlats, counts[domain.RoomTypeStandard])
}

// Квартира с несколькими пересекающимися бронированиями считается один раз
func TestUnitCounts_DeduplicatesFlat(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
		testBooking("101", "2025-07-06", "2025-07-09", domain.StatusUpcoming),
	}

	counts := UnitCounts(bookings, date("2025-07-08"))

	assert.Equal(t, domain.TotalFlats-1, counts[domain.RoomTypeStandard])
}

// Бронирования без назначенной квартиры не влияют на занятость
func TestUnitCounts_IgnoresUnassignedBookings(t *testing.T) {
	b := testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed)
	b.FlatNumber = nil

	counts := UnitCounts([]*domain.Booking{b}, date("2025-07-08"))

	assert.Equal(t, domain.TotalFlats, counts[domain.RoomTypeStandard])
}

func TestUnitCounts_FullHouse(t *testing.T) {
	bookings := make([]*domain.Booking, 0, domain.TotalFlats)
	for _, flat := range domain.AllFlats {
		bookings = append(bookings, testBooking(flat, "2025-07-01", "2025-07-31", domain.StatusConfirmed))
	}

	counts := UnitCounts(bookings, date("2025-07-08"))

	for _, rt := range domain.RoomTypes {
		assert.Equal(t, 0, counts[rt])
	}
}

// ============================ FlatStatuses ============================

func TestFlatStatuses_EmptyBookings(t *testing.T) {
	statuses := FlatStatuses(nil, date("2025-07-08"))

	require.Len(t, statuses, domain.TotalFlats)
	for i, st := range statuses {
		assert.Equal(t, domain.AllFlats[i], st.FlatNumber)
		assert.False(t, st.Occupied)
		assert.Nil(t, st.BookedBy)
	}
}

func TestFlatStatuses_OccupiedFlat(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("203", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
	}

	statuses := FlatStatuses(bookings, date("2025-07-08"))

	require.Len(t, statuses, domain.TotalFlats)
	for _, st := range statuses {
		if st.FlatNumber != "203" {
			assert.False(t, st.Occupied, "flat %s must be free", st.FlatNumber)
			continue
		}

		assert.True(t, st.Occupied)
		assert.Equal(t, 2, st.Floor)
		require.NotNil(t, st.BookedBy)
		assert.Equal(t, "Guest 203", *st.BookedBy)
		require.NotNil(t, st.CheckIn)
		assert.Equal(t, date("2025-07-07"), *st.CheckIn)
		require.NotNil(t, st.CheckOut)
		assert.Equal(t, date("2025-07-10"), *st.CheckOut)
	}
}

// При двух бронированиях одной квартиры показывается первое по порядку списка
func TestFlatStatuses_FirstMatchWins(t *testing.T) {
	first := testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed)
	first.CustomerName = "First Guest"
	second := testBooking("101", "2025-07-06", "2025-07-09", domain.StatusUpcoming)
	second.CustomerName = "Second Guest"

	statuses := FlatStatuses([]*domain.Booking{first, second}, date("2025-07-08"))

	require.NotNil(t, statuses[0].BookedBy)
	assert.Equal(t, "First Guest", *statuses[0].BookedBy)
}

// ============================ NextAvailableFlat ============================

func TestNextAvailableFlat_EmptyBookings(t *testing.T) {
	flat, ok := NextAvailableFlat(nil, date("2025-07-08"))

	assert.True(t, ok)
	assert.Equal(t, "101", flat)
}

func TestNextAvailableFlat_SkipsOccupied(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
		testBooking("102", "2025-07-07", "2025-07-10", domain.StatusUpcoming),
	}

	flat, ok := NextAvailableFlat(bookings, date("2025-07-08"))

	assert.True(t, ok)
	assert.Equal(t, "103", flat)
}

func TestNextAvailableFlat_FullHouse(t *testing.T) {
	bookings := make([]*domain.Booking, 0, domain.TotalFlats)
	for _, flat := range domain.AllFlats {
		bookings = append(bookings, testBooking(flat, "2025-07-01", "2025-07-31", domain.StatusConfirmed))
	}

	flat, ok := NextAvailableFlat(bookings, date("2025-07-08"))

	assert.False(t, ok)
	assert.Equal(t, "", flat)
}

// Детерминированность: одинаковый вход даёт одинаковый результат
func TestNextAvailableFlat_Deterministic(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-07", "2025-07-10", domain.StatusConfirmed),
	}

	first, ok1 := NextAvailableFlat(bookings, date("2025-07-08"))
	second, ok2 := NextAvailableFlat(bookings, date("2025-07-08"))

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

// ============================ IsFlatAvailable ============================

func TestIsFlatAvailable_NoBookings(t *testing.T) {
	ok, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-09"), nil)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsFlatAvailable_IdenticalInterval(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-08", "2025-07-09", domain.StatusConfirmed),
	}

	ok, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-09"), bookings)

	require.NoError(t, err)
	assert.False(t, ok)
}

// Смежные интервалы не конфликтуют: выезд и заезд в один день
func TestIsFlatAvailable_AdjacentIntervals(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-05", "2025-07-08", domain.StatusConfirmed),
	}

	ok, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-11"), bookings)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsFlatAvailable_PartialOverlap(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-05", "2025-07-09", domain.StatusUpcoming),
	}

	ok, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-12"), bookings)

	require.NoError(t, err)
	assert.False(t, ok)
}

// Проверка конфликта не зависит от текущей даты: блокируют и будущие
// бронирования, и формально прошедшие, но не переведённые в COMPLETED
func TestIsFlatAvailable_PastDatedBookingStillBlocks(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2020-01-01", "2030-01-01", domain.StatusConfirmed),
	}

	ok, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-09"), bookings)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsFlatAvailable_CancelledDoesNotBlock(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-08", "2025-07-09", domain.StatusCancelled),
		testBooking("101", "2025-07-08", "2025-07-09", domain.StatusCompleted),
	}

	ok, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-09"), bookings)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsFlatAvailable_OtherFlatDoesNotBlock(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("102", "2025-07-08", "2025-07-09", domain.StatusConfirmed),
	}

	ok, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-09"), bookings)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsFlatAvailable_InvalidFlat(t *testing.T) {
	_, err := IsFlatAvailable("105", date("2025-07-08"), date("2025-07-09"), nil)
	assert.ErrorIs(t, err, ErrInvalidFlatNumber)

	_, err = IsFlatAvailable("401", date("2025-07-08"), date("2025-07-09"), nil)
	assert.ErrorIs(t, err, ErrInvalidFlatNumber)
}

func TestIsFlatAvailable_InvalidInterval(t *testing.T) {
	// Нулевой интервал
	_, err := IsFlatAvailable("101", date("2025-07-08"), date("2025-07-08"), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// Перевёрнутый интервал
	_, err = IsFlatAvailable("101", date("2025-07-09"), date("2025-07-08"), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

// ============================ AvailableFlatsForRange ============================

func TestAvailableFlatsForRange_EmptyBookings(t *testing.T) {
	flats, err := AvailableFlatsForRange(date("2025-07-08"), date("2025-07-09"), nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AllFlats, flats)
}

func TestAvailableFlatsForRange_CanonicalOrder(t *testing.T) {
	bookings := []*domain.Booking{
		testBooking("101", "2025-07-08", "2025-07-10", domain.StatusConfirmed),
		testBooking("301", "2025-07-08", "2025-07-10", domain.StatusUpcoming),
	}

	flats, err := AvailableFlatsForRange(date("2025-07-08"), date("2025-07-09"), bookings)

	require.NoError(t, err)
	assert.Equal(t, []string{"102", "103", "104", "201", "202", "203", "204", "302", "303", "304"}, flats)
}

// Всё занято - пустой список без ошибки
func TestAvailableFlatsForRange_FullHouse(t *testing.T) {
	bookings := make([]*domain.Booking, 0, domain.TotalFlats)
	for _, flat := range domain.AllFlats {
		bookings = append(bookings, testBooking(flat, "2025-07-01", "2025-07-31", domain.StatusConfirmed))
	}

	flats, err := AvailableFlatsForRange(date("2025-07-08"), date("2025-07-09"), bookings)

	require.NoError(t, err)
	assert.Empty(t, flats)
}

func TestAvailableFlatsForRange_InvalidInterval(t *testing.T) {
	_, err := AvailableFlatsForRange(date("2025-07-09"), date("2025-07-08"), nil)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

// Сценарий "бронирование закрывает доступность": после добавления брони
// квартира пропадает из выдачи на пересекающийся интервал, но остаётся
// на смежный
func TestAvailableFlatsForRange_RoundTrip(t *testing.T) {
	var bookings []*domain.Booking

	flats, err := AvailableFlatsForRange(date("2025-07-08"), date("2025-07-11"), bookings)
	require.NoError(t, err)
	require.Contains(t, flats, "101")

	// Бронируем первую свободную
	bookings = append(bookings, testBooking(flats[0], "2025-07-08", "2025-07-11", domain.StatusUpcoming))

	// Пересекающийся интервал: квартиры больше нет в выдаче
	flats, err = AvailableFlatsForRange(date("2025-07-10"), date("2025-07-12"), bookings)
	require.NoError(t, err)
	assert.NotContains(t, flats, "101")

	// Смежный интервал: квартира свободна
	flats, err = AvailableFlatsForRange(date("2025-07-11"), date("2025-07-13"), bookings)
	require.NoError(t, err)
	assert.Contains(t, flats, "101")
}

// ============================ ValidateInterval ============================

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, ValidateInterval(date("2025-07-08"), date("2025-07-09")))
	assert.ErrorIs(t, ValidateInterval(date("2025-07-08"), date("2025-07-08")), ErrInvalidInterval)
	assert.ErrorIs(t, ValidateInterval(date("2025-07-09"), date("2025-07-08")), ErrInvalidInterval)
}

// Время суток не влияет на сравнение дат
func TestValidateInterval_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2025, 7, 8, 23, 59, 0, 0, time.UTC)
	checkOut := time.Date(2025, 7, 9, 0, 1, 0, 0, time.UTC)

	assert.NoError(t, ValidateInterval(checkIn, checkOut))
}

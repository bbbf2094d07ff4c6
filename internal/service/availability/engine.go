package availability

import (
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// Чистые функции расчёта доступности. Состояния нет, ввода-вывода нет:
// всё вычисляется заново из переданного списка бронирований, поэтому функции
// безопасны для параллельных вызовов.
//
// Здесь два РАЗНЫХ предиката, и это намеренно:
//   - занятость "на дату" (CONFIRMED/UPCOMING и checkIn <= asOf < checkOut) -
//     для дашбордов и счётчиков;
//   - пересечение интервалов [a,b) x [c,d) (a < d && c < b, без CANCELLED и
//     COMPLETED) - для проверки конфликта при новом бронировании.

// UnitCounts считает количество свободных квартир на дату asOf для каждого
// типа номера. Любой тип занимает квартиру целиком, поэтому все три типа
// всегда возвращают одно и то же число - это бизнес-правило, а не ошибка.
// Результат всегда в диапазоне [0, TotalFlats].
func UnitCounts(bookings []*domain.Booking, asOf time.Time) map[domain.RoomType]int {
	occupied := occupiedFlats(bookings, asOf)

	available := domain.TotalFlats - len(occupied)
	if available < 0 {
		available = 0
	}

	counts := make(map[domain.RoomType]int, len(domain.RoomTypes))
	for _, roomType := range domain.RoomTypes {
		counts[roomType] = available
	}
	return counts
}

// FlatStatuses возвращает занятость каждой квартиры фонда на дату asOf
// в каноническом порядке 101..304. Для занятой квартиры показывается первое
// подходящее бронирование в порядке входного списка.
func FlatStatuses(bookings []*domain.Booking, asOf time.Time) []domain.FlatStatus {
	statuses := make([]domain.FlatStatus, 0, domain.TotalFlats)

	for _, flat := range domain.AllFlats {
		status := domain.FlatStatus{
			FlatNumber: flat,
			Floor:      domain.FlatFloor(flat),
		}

		for _, b := range bookings {
			if b.FlatNumber == nil || *b.FlatNumber != flat {
				continue
			}
			if !b.OccupiesOn(asOf) {
				continue
			}

			status.Occupied = true
			status.BookedBy = &b.CustomerName
			status.CheckIn = &b.CheckIn
			status.CheckOut = &b.CheckOut
			status.RoomType = &b.RoomType
			break
		}

		statuses = append(statuses, status)
	}

	return statuses
}

// NextAvailableFlat возвращает первую свободную на дату asOf квартиру
// в каноническом порядке. Если заняты все 12 - ("", false).
// Детерминирована: одинаковый вход всегда даёт одинаковый результат.
func NextAvailableFlat(bookings []*domain.Booking, asOf time.Time) (string, bool) {
	occupied := occupiedFlats(bookings, asOf)

	for _, flat := range domain.AllFlats {
		if _, taken := occupied[flat]; !taken {
			return flat, true
		}
	}
	return "", false
}

// IsFlatAvailable проверяет конкретную квартиру на конкретный интервал дат.
// В отличие от проверок "на сегодня", здесь просматриваются ВСЕ бронирования
// квартиры независимо от текущей даты; исключаются только CANCELLED и
// COMPLETED. Это авторитетный предикат конфликта для новых бронирований.
func IsFlatAvailable(flatNumber string, checkIn, checkOut time.Time, bookings []*domain.Booking) (bool, error) {
	if !domain.IsValidFlat(flatNumber) {
		return false, ErrInvalidFlatNumber
	}
	if err := ValidateInterval(checkIn, checkOut); err != nil {
		return false, err
	}

	in := domain.DateOnly(checkIn)
	out := domain.DateOnly(checkOut)

	for _, b := range bookings {
		if b.FlatNumber == nil || *b.FlatNumber != flatNumber {
			continue
		}
		if !b.BlocksAvailability() {
			continue
		}
		if overlaps(in, out, domain.DateOnly(b.CheckIn), domain.DateOnly(b.CheckOut)) {
			return false, nil
		}
	}

	return true, nil
}

// AvailableFlatsForRange возвращает свободные на интервал [checkIn, checkOut)
// квартиры в каноническом порядке. Пустой список - нормальный бизнес-результат
// "всё занято", а не ошибка.
func AvailableFlatsForRange(checkIn, checkOut time.Time, bookings []*domain.Booking) ([]string, error) {
	if err := ValidateInterval(checkIn, checkOut); err != nil {
		return nil, err
	}

	free := make([]string, 0, domain.TotalFlats)
	for _, flat := range domain.AllFlats {
		ok, err := IsFlatAvailable(flat, checkIn, checkOut, bookings)
		if err != nil {
			return nil, err
		}
		if ok {
			free = append(free, flat)
		}
	}
	return free, nil
}

// ValidateInterval проверяет, что интервал дат корректен (checkIn < checkOut)
func ValidateInterval(checkIn, checkOut time.Time) error {
	if !domain.DateOnly(checkIn).Before(domain.DateOnly(checkOut)) {
		return ErrInvalidInterval
	}
	return nil
}

// occupiedFlats возвращает множество квартир, занятых на дату asOf.
// Квартира учитывается один раз, даже если на неё (ошибочно) ссылаются
// несколько пересекающихся бронирований.
func occupiedFlats(bookings []*domain.Booking, asOf time.Time) map[string]struct{} {
	occupied := make(map[string]struct{})
	for _, b := range bookings {
		if b.FlatNumber == nil {
			continue
		}
		if b.OccupiesOn(asOf) {
			occupied[*b.FlatNumber] = struct{}{}
		}
	}
	return occupied
}

// overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и
// [bStart, bEnd). Смежные интервалы (aEnd == bStart) НЕ пересекаются:
// выезд и заезд в один день допустимы.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

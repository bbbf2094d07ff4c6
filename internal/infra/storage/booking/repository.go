package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GH-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"order_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"room_type",
	"room_title",
	"flat_number",
	"check_in",
	"check_out",
	"guests",
	"total_amount",
	"payment_status",
	"booking_status",
	"booking_date",
	"special_requests",
	"payment_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание в транзакции обязательно, когда вставке предшествует проверка
// доступности квартиры - иначе возможна гонка двух одновременных бронирований.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"order_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"room_type",
			"room_title",
			"flat_number",
			"check_in",
			"check_out",
			"guests",
			"total_amount",
			"payment_status",
			"booking_status",
			"special_requests",
		).
		Values(
			booking.OrderID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.RoomType,
			booking.RoomTitle,
			booking.FlatNumber,
			booking.CheckIn,
			booking.CheckOut,
			booking.Guests,
			booking.TotalAmount,
			booking.PaymentStatus,
			booking.BookingStatus,
			booking.SpecialRequests,
		).
		Suffix("RETURNING id, booking_date, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var bookingDate, createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&bookingDate,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicateOrderID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.BookingDate = bookingDate.Time
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByOrderID получает бронирование по ID заказа платёжного шлюза
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру
//
// Примеры использования:
//
//  1. Все бронирования, влияющие на доступность (для расчёта занятости):
//     filter := domain.BookingsFilter{OnlyBlocking: true}
//
//  2. Полный список для админки, сначала новые:
//     filter := domain.BookingsFilter{NewestFirst: true}
//
//  3. Бронирования конкретной квартиры:
//     flat := "101"
//     filter := domain.BookingsFilter{FlatNumber: &flat, OnlyBlocking: true}
//
// Без NewestFirst результат отсортирован по id ASC - стабильный канонический
// порядок, от которого зависит детерминированный выбор бронирования при
// отображении занятой квартиры.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.FlatNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"flat_number": *filter.FlatNumber})
	}

	if filter.CustomerEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_email": *filter.CustomerEmail})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_status": *filter.Status})
	} else if filter.OnlyBlocking {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"booking_status": []string{
			string(domain.StatusCancelled),
			string(domain.StatusCompleted),
		}})
	}

	if filter.NewestFirst {
		selectBuilder = selectBuilder.OrderBy("created_at DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("id ASC")
	}

	// Внутри транзакции блокируем выбранные строки: проверка доступности
	// и вставка нового бронирования должны видеть согласованный снимок
	if dbmetrics.IsInTransaction(ctx) && filter.OnlyBlocking {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdatePaymentStatus обновляет статус платежа и производный статус бронирования
// одним запросом: PAID подтверждает бронирование, FAILED отменяет его,
// остальные статусы платежа бронирование не трогают
func (r *Repository) UpdatePaymentStatus(ctx context.Context, orderID string, status domain.PaymentStatus, paymentTime *time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("booking_status", squirrel.Expr(
			"CASE WHEN ? = 'PAID' THEN 'CONFIRMED' WHEN ? = 'FAILED' THEN 'CANCELLED' ELSE booking_status END",
			string(status), string(status),
		)).
		Set("payment_time", paymentTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"order_id": orderID}).
		Suffix("RETURNING " + joinColumns(bookingColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdatePaymentStatus - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// AssignFlat назначает квартиру бронированию
func (r *Repository) AssignFlat(ctx context.Context, orderID string, flatNumber string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("flat_number", flatNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignFlat - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AssignFlat - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AssignFlat - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var bookingDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.RoomType,
		&booking.RoomTitle,
		&booking.FlatNumber,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Guests,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&bookingDate,
		&booking.SpecialRequests,
		&booking.PaymentTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = bookingDate.Time
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

package create_order

import (
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// Request модель запроса на создание заказа бронирования
type Request struct {
	CustomerName    string          // Имя гостя
	CustomerEmail   string          // Email гостя (должен быть подтверждён OTP)
	CustomerPhone   string          // Телефон гостя с кодом страны
	RoomType        domain.RoomType // Тип номера
	CheckIn         time.Time       // Дата заезда (без времени)
	CheckOut        time.Time       // Дата выезда
	Guests          int             // Количество гостей
	SpecialRequests *string         // Пожелания (опционально)
}

// Response модель ответа с созданным заказом
type Response struct {
	OrderID          string    // ID заказа в платёжном шлюзе
	PaymentSessionID string    // Токен для hosted checkout
	FlatNumber       string    // Назначенная квартира
	RoomTitle        string    // Название типа номера
	CheckIn          time.Time // Дата заезда
	CheckOut         time.Time // Дата выезда
	Nights           int       // Количество ночей
	TotalAmount      float64   // Сумма к оплате
	Currency         string    // Валюта
	PaymentStatus    string    // Статус платежа (PENDING)
	BookingStatus    string    // Статус бронирования (UPCOMING)
}

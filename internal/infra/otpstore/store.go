// Package otpstore - хранилище одноразовых кодов в Redis
// Коды и флаги подтверждения живут ограниченное время (TTL)
package otpstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/GH-BookingService/internal/config"
)

var (
	// ErrCodeNotFound возвращается, когда код не найден или истёк
	ErrCodeNotFound = errors.New("otpstore: code not found or expired")
)

// Store хранилище OTP-кодов с TTL
type Store struct {
	client      *redis.Client
	codeTTL     time.Duration
	verifiedTTL time.Duration
}

// New создает хранилище OTP-кодов поверх Redis
func New(cfg config.RedisConfig, codeTTL, verifiedTTL time.Duration) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		codeTTL:     codeTTL,
		verifiedTTL: verifiedTTL,
	}
}

// Ping проверяет соединение с Redis
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis
func (s *Store) Close() error {
	return s.client.Close()
}

// SaveCode сохраняет код для адреса; повторная отправка перезаписывает
// предыдущий код и сбрасывает TTL
func (s *Store) SaveCode(ctx context.Context, email, code string) error {
	return s.client.Set(ctx, codeKey(email), code, s.codeTTL).Err()
}

// GetCode возвращает действующий код для адреса
func (s *Store) GetCode(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, codeKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCodeNotFound
		}
		return "", err
	}
	return code, nil
}

// DeleteCode удаляет код (после успешной проверки)
func (s *Store) DeleteCode(ctx context.Context, email string) error {
	return s.client.Del(ctx, codeKey(email)).Err()
}

// MarkVerified помечает адрес подтверждённым на время verifiedTTL
func (s *Store) MarkVerified(ctx context.Context, email string) error {
	return s.client.Set(ctx, verifiedKey(email), "1", s.verifiedTTL).Err()
}

// IsVerified сообщает, подтверждён ли адрес
func (s *Store) IsVerified(ctx context.Context, email string) (bool, error) {
	_, err := s.client.Get(ctx, verifiedKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ClearVerified снимает отметку подтверждения (после создания заказа)
func (s *Store) ClearVerified(ctx context.Context, email string) error {
	return s.client.Del(ctx, verifiedKey(email)).Err()
}

func codeKey(email string) string {
	return fmt.Sprintf("otp:code:%s", email)
}

func verifiedKey(email string) string {
	return fmt.Sprintf("otp:verified:%s", email)
}

package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// AdminKeyHeader заголовок с админским ключом
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth проверяет заголовок X-Admin-Key для админских маршрутов
// Сравнение за константное время, чтобы не давать подбирать ключ по таймингам
func AdminAuth(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "unauthorized",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

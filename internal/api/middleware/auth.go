package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt"

	"github.com/barbercloud/barbercloud/internal/api/handlers"
)

// BarbershopClaim claim токена с ID барбершопа администратора
const BarbershopClaim = "barbershopId"

var (
	// ErrMissingToken возвращается, если нет заголовка Authorization: Bearer
	ErrMissingToken = errors.New("middleware: missing bearer token")

	// ErrInvalidToken возвращается для невалидной подписи, истекшего токена или без barbershopId
	ErrInvalidToken = errors.New("middleware: invalid token")
)

type ctxKey int

const (
	barbershopIDKey ctxKey = iota
	requestIDKey
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// WithBarbershopID кладет ID барбершопа в контекст
func WithBarbershopID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, barbershopIDKey, id)
}

// BarbershopIDFromContext достает ID барбершопа, положенный Auth
func BarbershopIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(barbershopIDKey).(int64)
	return id, ok && id > 0
}

// Auth проверяет HS256 токен из заголовка Authorization и кладет barbershopId в контекст
func Auth(secret string, logger Logger) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := authenticate(r.Header.Get("Authorization"), key)
			if err != nil {
				logger.Warn("Auth: %s %s rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithBarbershopID(r.Context(), id)))
		})
	}
}

func authenticate(header string, key []byte) (int64, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return 0, ErrMissingToken
	}

	token, err := jwt.Parse(strings.TrimSpace(tokenString), func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	id, err := claimInt64(claims[BarbershopClaim])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: claim %s is missing or not a positive number", ErrInvalidToken, BarbershopClaim)
	}

	return id, nil
}

// claimInt64 числа в MapClaims приходят как float64, строковый ID тоже принимается
func claimInt64(v interface{}) (int64, error) {
	switch value := v.(type) {
	case float64:
		if value != float64(int64(value)) {
			return 0, fmt.Errorf("not an integer: %v", value)
		}
		return int64(value), nil
	case string:
		return strconv.ParseInt(value, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

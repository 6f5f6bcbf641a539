package barbercloud

import (
	"errors"
	"fmt"
)

var (
	// ErrRemote базовая ошибка для ответов сервера с кодом не 2xx
	ErrRemote = errors.New("barbercloud client: remote error")

	// ErrInternal возвращается при внутренних ошибках клиента (запрос не дошел до сервера)
	ErrInternal = errors.New("barbercloud client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервера
	ErrInvalidResponse = errors.New("barbercloud client: invalid response")
)

// genericSaveMessage сообщение, если сервер не прислал свое
const genericSaveMessage = "no se pudo guardar"

// RemoteError ответ сервера с кодом не 2xx
// Message берется из тела {"error": "..."} и показывается пользователю как есть
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return ErrRemote
}

// Describe возвращает сообщение вместе с кодом ответа для логов
func (e *RemoteError) Describe() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

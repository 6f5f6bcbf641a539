package create_appointment

import (
	"time"

	"github.com/barbercloud/barbercloud/pkg/types"
)

// Request модель запроса на создание записи из мастера бронирования
type Request struct {
	BarbershopID  int64            // ID барбершопа
	ServiceID     int64            // ID услуги
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	BarbershopID    int64            // ID барбершопа
	ServiceID       int64            // ID услуги
	CustomerName    string           // Имя клиента
	CustomerPhone   string           // Телефон клиента
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория недельного расписания
type WorkingHoursRepository interface {
	GetByBarbershopAndWeekday(ctx context.Context, barbershopID int64, weekday domain.Weekday) ([]domain.TimeRange, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetActiveByDate получает активные записи барбершопа на дату
	GetActiveByDate(ctx context.Context, barbershopID int64, date time.Time) ([]*domain.Appointment, error)
}

// PolicyProvider источник действующей политики бронирования барбершопа
type PolicyProvider interface {
	Policy(ctx context.Context, barbershopID int64) (domain.BookingPolicy, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

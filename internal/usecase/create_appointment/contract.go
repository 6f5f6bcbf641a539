package create_appointment

import (
	"context"
	"time"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetActiveByDate(ctx context.Context, barbershopID int64, date time.Time) ([]*domain.Appointment, error)
}

// WorkingHoursRepository интерфейс репозитория недельного расписания
type WorkingHoursRepository interface {
	GetByBarbershopAndWeekday(ctx context.Context, barbershopID int64, weekday domain.Weekday) ([]domain.TimeRange, error)
}

// PolicyProvider источник действующей политики бронирования барбершопа
type PolicyProvider interface {
	Policy(ctx context.Context, barbershopID int64) (domain.BookingPolicy, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для сбора метрик по записям
type Metrics interface {
	IncAppointmentsCreated()
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

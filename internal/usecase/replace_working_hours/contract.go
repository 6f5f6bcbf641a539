package replace_working_hours

import (
	"context"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория недельного расписания
type WorkingHoursRepository interface {
	GetByBarbershop(ctx context.Context, barbershopID int64) ([]domain.WorkingHoursEntry, error)
	Replace(ctx context.Context, barbershopID int64, entries []domain.WorkingHoursEntry) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс для сбора метрик по расписанию
type Metrics interface {
	IncWorkingHoursReplaced()
	IncWorkingHoursRejected(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

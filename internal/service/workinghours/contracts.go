package workinghours

import (
	"context"

	"github.com/barbercloud/barbercloud/internal/domain"
)

// RemoteStore удаленное хранилище недельного расписания
// ReplaceWorkingHours - полная замена (удалить и вставить заново), а не слияние
type RemoteStore interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHoursEntry, error)
	ReplaceWorkingHours(ctx context.Context, items []domain.WorkingHoursEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

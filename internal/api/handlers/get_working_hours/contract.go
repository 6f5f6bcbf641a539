package get_working_hours

import (
	"context"

	"github.com/barbercloud/barbercloud/internal/domain"
)

type WorkingHoursRepository interface {
	GetByBarbershop(ctx context.Context, barbershopID int64) ([]domain.WorkingHoursEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

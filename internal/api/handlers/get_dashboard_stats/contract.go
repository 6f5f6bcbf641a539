package get_dashboard_stats

import (
	"context"

	"github.com/barbercloud/barbercloud/internal/service/appointments/models"
)

type AppointmentService interface {
	Stats(ctx context.Context, barbershopID int64) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_booking_settings

import (
	"context"

	"github.com/barbercloud/barbercloud/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, barbershopID int64) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

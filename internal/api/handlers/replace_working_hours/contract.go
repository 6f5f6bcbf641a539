package replace_working_hours

import (
	"context"

	replaceWorkingHours "github.com/barbercloud/barbercloud/internal/usecase/replace_working_hours"
)

type ReplaceWorkingHoursUseCase interface {
	Execute(ctx context.Context, req *replaceWorkingHours.Request) (*replaceWorkingHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

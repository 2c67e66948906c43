package working_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/workinghours"
)

type WorkingHoursService interface {
	GetTemplate(ctx context.Context, staffID int64) (*workinghours.Template, error)
	SetTemplate(ctx context.Context, staffID int64, week domain.WeeklyTemplate, confirm bool) (*workinghours.Template, error)
	Reset(ctx context.Context, staffID int64, confirm bool) (*workinghours.Template, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

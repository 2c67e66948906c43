package export_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/usecase/list_appointments"
)

// AppointmentLister источник отфильтрованного списка записей
type AppointmentLister interface {
	Execute(ctx context.Context, req *list_appointments.Request) (*list_appointments.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

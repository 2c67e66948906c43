package export_appointments

import (
	"context"

	exportAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/export_appointments"
	listAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/list_appointments"
)

type ExportAppointmentsUseCase interface {
	Execute(ctx context.Context, req *listAppointments.Request) (*exportAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

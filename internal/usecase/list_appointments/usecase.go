package list_appointments

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для списка записей с фильтрами и сортировкой
type UseCase struct {
	appointmentRepo AppointmentRepository
	settings        calendar.Settings
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, settings calendar.Settings, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settings:        settings,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает записи периода, прошедшие все фильтры
// Хранилище сужает выборку по периоду, мастеру и статусу,
// остальные фильтры и сортировка выполняются в памяти
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбор параметров
	p, err := parseRequest(req, uc.settings.Today(uc.timeProvider.Now()))
	if err != nil {
		uc.logger.Warn("ListAppointments: invalid request: %v", err)
		return nil, err
	}

	uc.logger.Info("ListAppointments: range=%s, sort=%s", p.dateRange, p.sort)

	// 2. Выборка из хранилища
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		StartDate:  &p.dateRange.Start,
		EndDate:    &p.dateRange.End,
		EmployeeID: p.filters.StaffID,
		CustomerID: p.filters.CustomerID,
		Status:     p.filters.Status,
	})
	if err != nil {
		uc.logger.Error("ListAppointments: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Фильтры и сортировка
	result := calendar.Apply(appointments, p.filters, p.sort)

	var total int64
	for _, a := range result {
		total += a.Price()
	}

	uc.logger.Info("ListAppointments: returned %d of %d appointments", len(result), len(appointments))

	return &Response{
		Range:        p.dateRange,
		Appointments: result,
		TotalAmount:  total,
	}, nil
}

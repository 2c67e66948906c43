package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	staffRepo       StaffRepository
	serviceRepo     ServiceRepository
	hours           HoursProvider
	txManager       TransactionManager
	settings        calendar.Settings
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	hours HoursProvider,
	txManager TransactionManager,
	settings calendar.Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		staffRepo:       staffRepo,
		serviceRepo:     serviceRepo,
		hours:           hours,
		txManager:       txManager,
		settings:        settings,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка слота и вставка идут в одной сериализуемой транзакции,
// записи мастера на эту дату блокируются до коммита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("CreateAppointment: customer=%d, staff=%d, date=%s, time=%s, services=%v",
		req.CustomerID, req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.settings.Slots); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}
	date := calendar.DateOnly(req.Date)

	// 2. Получаем клиента
	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateAppointment: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Получаем мастера
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.CanTakeAppointments() {
		uc.logger.Warn("CreateAppointment: staff id=%d has status=%s", staff.ID, staff.Status)
		return nil, ErrStaffUnavailable
	}

	// 4. Получаем услуги в порядке запроса
	found, err := uc.serviceRepo.ListServices(ctx, catalogRepo.ServiceFilter{IDs: req.ServiceIDs})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	services, missing, ok := orderServices(req.ServiceIDs, found)
	if !ok {
		uc.logger.Warn("CreateAppointment: service id=%d not found or inactive", missing)
		return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, missing)
	}

	appointment := &domain.Appointment{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		Date:          date,
		StartTime:     req.StartTime,
		Services:      services,
		EmployeeID:    staff.ID,
		EmployeeName:  staff.Name,
		Status:        domain.AppointmentScheduled,
		Memo:          req.Memo,
		Amount:        req.Amount,
	}

	// 5. Время окончания по суммарной длительности услуг
	end, err := appointment.DerivedEndTime()
	if err != nil {
		uc.logger.Warn("CreateAppointment: end time overflows the day: start=%s, duration=%d",
			req.StartTime, appointment.TotalDuration())
		return nil, fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	}
	appointment.EndTime = end

	var result *domain.Appointment

	// 6. Проверка слота и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. График мастера
		resolver, err := uc.hours.Resolver(txCtx, staff.ID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to resolve working hours: %v", err)
			return fmt.Errorf("%w: failed to resolve working hours: %w", ErrInternal, err)
		}

		// 6.2. Записи мастера на дату с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.List(txCtx, domain.AppointmentFilter{
			StartDate:  &date,
			EndDate:    &date,
			EmployeeID: &staff.ID,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %w", ErrInternal, err)
		}

		active := make([]*domain.Appointment, 0, len(existing))
		for _, a := range existing {
			if a.IsActive() {
				active = append(active, a)
			}
		}

		// 6.3. Классификация ячейки и проверка пересечений
		index := calendar.NewIndex(active, uc.settings.Slots, uc.settings.MatchMode)
		classifier := calendar.NewClassifier(resolver, index)
		hours := classifier.Hours(staff.ID, date)

		if err := checkSlot(classifier, hours, active, staff.ID, date, req.StartTime, end); err != nil {
			uc.logger.Warn("CreateAppointment: slot rejected: %v", err)
			return err
		}

		// 6.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельная запись заняла тот же слот, повтор транзакции не помог
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: concurrent booking conflict: staff=%d, date=%s, start=%s",
				staff.ID, date.Format(time.DateOnly), req.StartTime)
			return nil, fmt.Errorf("%w: concurrent booking of the same slot", ErrSlotOccupied)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)
	return result, nil
}

package get_calendar

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case для построения календаря записей
type UseCase struct {
	appointmentRepo AppointmentRepository
	hours           HoursProvider
	settings        calendar.Settings
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hours HoursProvider,
	settings calendar.Settings,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hours:           hours,
		settings:        settings,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит сетку месяца, недели или дня
//
// Без выбранного мастера неделя и день показывают весь салон
// по общему графику (staffID = 0 не имеет персонального шаблона)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбор параметров
	p, err := parseRequest(req)
	if err != nil {
		uc.logger.Warn("GetCalendar: invalid request: %v", err)
		return nil, err
	}

	// 2. Выбранная дата с учетом навигации
	today := uc.settings.Today(uc.timeProvider.Now())
	selected := today
	if req.Date != nil {
		selected = calendar.DateOnly(*req.Date)
	}
	selected, err = calendar.Navigate(p.view, selected, p.action, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Видимый диапазон дат
	visible, err := calendar.VisibleRange(p.view, selected)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetCalendar: view=%s, selected=%s, range=%s", p.view, selected.Format(domain.DateFormat), visible)

	// 4. Записи диапазона
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		StartDate:  &visible.Start,
		EndDate:    &visible.End,
		EmployeeID: req.StaffID,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Фильтры и индекс занятости
	filtered := calendar.Filter(appointments, calendar.Filters{
		Range:    &visible,
		StaffID:  req.StaffID,
		Category: p.category,
		Status:   p.status,
		Query:    req.Query,
	})
	index := calendar.NewIndex(filtered, uc.settings.Slots, uc.settings.MatchMode)

	resp := &Response{
		View:     p.view,
		Selected: selected,
		Today:    today,
		Range:    visible,
		Total:    len(filtered),
	}

	// 6. Сетка выбранного режима
	if p.view == calendar.ViewMonth {
		month := calendar.BuildMonth(selected, today, index, uc.settings.Preview(req.Narrow))
		resp.Month = &month
		return resp, nil
	}

	var staffID int64
	var staffIDs []int64
	if req.StaffID != nil {
		staffID = *req.StaffID
		staffIDs = append(staffIDs, staffID)
	}

	resolver, err := uc.hours.Resolver(ctx, staffIDs...)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to resolve working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve working hours: %v", ErrInternal, err)
	}
	classifier := calendar.NewClassifier(resolver, index)

	var cells []calendar.Cell
	switch p.view {
	case calendar.ViewWeek:
		week := calendar.BuildWeek(selected, uc.settings.Slots, classifier, staffID)
		resp.Week = &week
		for _, row := range week.Rows {
			cells = append(cells, row.Cells...)
		}
	case calendar.ViewDay:
		day := calendar.BuildDay(selected, uc.settings.Slots, classifier, staffID)
		resp.Day = &day
		cells = day.Rows
	}

	resp.Counts = calendar.CountClasses(cells)
	uc.recordCells(resp.Counts)

	return resp, nil
}

func (uc *UseCase) recordCells(counts map[calendar.CellClass]int) {
	if uc.metrics == nil {
		return
	}
	for class, n := range counts {
		uc.metrics.AddCalendarCells(string(class), n)
	}
}

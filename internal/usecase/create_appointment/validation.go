package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest собирает ошибки всех полей запроса
// Прошедшие даты разрешены: администратор может внести запись задним числом
func validateRequest(req *Request, slots calendar.SlotGrid) error {
	errs := domain.ValidationErrors{}

	if req.CustomerID <= 0 {
		errs.Add("customerId", "обязательное поле")
	}
	if req.StaffID <= 0 {
		errs.Add("staffId", "обязательное поле")
	}
	if req.Date.IsZero() {
		errs.Add("date", "обязательное поле")
	}

	if err := req.StartTime.Validate(); err != nil {
		errs.Add("startTime", "некорректный формат времени, ожидается HH:MM")
	} else if !slots.Contains(req.StartTime) {
		errs.Add("startTime", "время должно совпадать с началом слота")
	}

	switch {
	case len(req.ServiceIDs) == 0:
		errs.Add("serviceIds", "выберите хотя бы одну услугу")
	case len(req.ServiceIDs) > domain.MaxServicesPerVisit:
		errs.Add("serviceIds", fmt.Sprintf("не больше %d услуг", domain.MaxServicesPerVisit))
	default:
		seen := make(map[int64]struct{}, len(req.ServiceIDs))
		for _, id := range req.ServiceIDs {
			if id <= 0 {
				errs.Add("serviceIds", "некорректный идентификатор услуги")
				break
			}
			if _, dup := seen[id]; dup {
				errs.Add("serviceIds", "услуга указана дважды")
				break
			}
			seen[id] = struct{}{}
		}
	}

	if req.Memo != nil && len([]rune(*req.Memo)) > domain.MaxMemoLength {
		errs.Add("memo", "слишком длинное значение")
	}
	if req.Amount != nil && *req.Amount < 0 {
		errs.Add("amount", "сумма не может быть отрицательной")
	}

	return errs.Err()
}

// orderServices раскладывает найденные услуги в порядке запроса
// Возвращает ID первой отсутствующей услуги
func orderServices(ids []int64, found []*domain.Service) ([]domain.AppointmentService, int64, bool) {
	byID := make(map[int64]*domain.Service, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	items := make([]domain.AppointmentService, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok || !s.Active {
			return nil, id, false
		}
		items = append(items, domain.AppointmentService{
			ServiceID:       s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.BasePrice,
		})
	}

	return items, 0, true
}

// checkSlot проверяет ячейку и пересечения с активными записями мастера
func checkSlot(
	classifier *calendar.Classifier,
	hours domain.WorkingHours,
	active []*domain.Appointment,
	staffID int64,
	date time.Time,
	start, end types.TimeString,
) error {
	cell := classifier.Classify(staffID, date, start)
	switch cell.Class {
	case calendar.NonWorking, calendar.Break:
		return fmt.Errorf("%w: %s %s is %s", ErrSlotNotWorking, date.Format(domain.DateFormat), start, cell.Class)
	case calendar.Occupied:
		return fmt.Errorf("%w: %s %s", ErrSlotOccupied, date.Format(domain.DateFormat), start)
	}

	for _, a := range active {
		aEnd := endOf(a)
		if calendar.Overlaps(start, end, a.StartTime, aEnd) {
			return fmt.Errorf("%w: overlaps appointment id=%d %s-%s", ErrSlotOccupied, a.ID, a.StartTime, aEnd)
		}
	}

	if !hours.Contains(start, end) {
		return fmt.Errorf("%w: %s-%s, working hours %s-%s", ErrOutsideWorkingHours, start, end, hours.Start, hours.End)
	}

	return nil
}

// endOf сохраненное время окончания, если его нет - вычисленное по услугам
func endOf(a *domain.Appointment) types.TimeString {
	if !a.EndTime.IsZero() {
		return a.EndTime
	}
	end, err := a.DerivedEndTime()
	if err != nil {
		return a.StartTime
	}
	return end
}

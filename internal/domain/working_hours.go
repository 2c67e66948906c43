package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// WorkingHours рабочее окно на один день недели
// Перерыв задан, только если заданы обе границы
type WorkingHours struct {
	IsWorking  bool
	Start      types.TimeString
	End        types.TimeString
	LunchStart *types.TimeString
	LunchEnd   *types.TimeString
}

// HasLunch возвращает true, если на день задан обеденный перерыв
func (w WorkingHours) HasLunch() bool {
	return w.LunchStart != nil && w.LunchEnd != nil
}

// InLunch проверяет попадание времени в полуинтервал [LunchStart, LunchEnd)
func (w WorkingHours) InLunch(t types.TimeString) bool {
	if !w.HasLunch() {
		return false
	}
	return !t.IsBefore(*w.LunchStart) && t.IsBefore(*w.LunchEnd)
}

// Contains проверяет, что интервал [start, end) целиком внутри рабочего окна
func (w WorkingHours) Contains(start, end types.TimeString) bool {
	if !w.IsWorking {
		return false
	}
	return !start.IsBefore(w.Start) && !end.IsAfter(w.End)
}

// Validate проверяет согласованность рабочего окна
func (w WorkingHours) Validate() error {
	if !w.IsWorking {
		return nil
	}
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("start %s must be before end %s", w.Start, w.End)
	}
	if (w.LunchStart == nil) != (w.LunchEnd == nil) {
		return fmt.Errorf("lunch requires both start and end")
	}
	if w.HasLunch() {
		if err := w.LunchStart.Validate(); err != nil {
			return err
		}
		if err := w.LunchEnd.Validate(); err != nil {
			return err
		}
		if !w.LunchStart.IsBefore(*w.LunchEnd) {
			return fmt.Errorf("lunch start %s must be before lunch end %s", *w.LunchStart, *w.LunchEnd)
		}
		if w.LunchStart.IsBefore(w.Start) || w.LunchEnd.IsAfter(w.End) {
			return fmt.Errorf("lunch %s-%s is outside working hours", *w.LunchStart, *w.LunchEnd)
		}
	}
	return nil
}

// WeeklyTemplate шаблон рабочей недели, индекс = time.Weekday (0 - воскресенье)
type WeeklyTemplate [7]WorkingHours

// Day возвращает рабочее окно для дня недели
func (t WeeklyTemplate) Day(weekday time.Weekday) WorkingHours {
	if weekday < time.Sunday || weekday > time.Saturday {
		return WorkingHours{}
	}
	return t[weekday]
}

// Validate проверяет все дни шаблона
func (t WeeklyTemplate) Validate() error {
	for day, hours := range t {
		if err := hours.Validate(); err != nil {
			return fmt.Errorf("%s: %w", time.Weekday(day), err)
		}
	}
	return nil
}

// DefaultWeeklyTemplate общий для всех сотрудников график салона:
// воскресенье и понедельник выходные,
// суббота 10:00-17:00 с обедом 12:30-13:30,
// вторник-пятница 09:00-18:00 с обедом 12:00-13:00
func DefaultWeeklyTemplate() WeeklyTemplate {
	weekday := func() WorkingHours {
		return WorkingHours{
			IsWorking:  true,
			Start:      "09:00",
			End:        "18:00",
			LunchStart: timePtr("12:00"),
			LunchEnd:   timePtr("13:00"),
		}
	}

	return WeeklyTemplate{
		time.Sunday:    {IsWorking: false},
		time.Monday:    {IsWorking: false},
		time.Tuesday:   weekday(),
		time.Wednesday: weekday(),
		time.Thursday:  weekday(),
		time.Friday:    weekday(),
		time.Saturday: {
			IsWorking:  true,
			Start:      "10:00",
			End:        "17:00",
			LunchStart: timePtr("12:30"),
			LunchEnd:   timePtr("13:30"),
		},
	}
}

func timePtr(s types.TimeString) *types.TimeString {
	return &s
}

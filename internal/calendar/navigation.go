package calendar

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownView возвращается при неизвестном режиме календаря
	ErrUnknownView = errors.New("calendar: unknown view mode")

	// ErrUnknownAction возвращается при неизвестном действии навигации
	ErrUnknownAction = errors.New("calendar: unknown navigation action")
)

// ViewMode режим отображения календаря
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// ParseViewMode разбирает режим, пустая строка - month
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	case ViewDay:
		return ViewDay, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
}

// NavAction действие навигации
type NavAction string

const (
	NavNone  NavAction = ""
	NavPrev  NavAction = "prev"
	NavNext  NavAction = "next"
	NavToday NavAction = "today"
)

// ParseNavAction разбирает действие навигации
func ParseNavAction(s string) (NavAction, error) {
	switch NavAction(s) {
	case NavNone, NavPrev, NavNext, NavToday:
		return NavAction(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Navigate вычисляет новую выбранную дату
// prev/next сдвигают на месяц, неделю или день в зависимости от режима,
// today возвращает текущую дату в любом режиме
func Navigate(mode ViewMode, selected time.Time, action NavAction, today time.Time) (time.Time, error) {
	selected = DateOnly(selected)

	step := 0
	switch action {
	case NavNone:
		return selected, nil
	case NavToday:
		return DateOnly(today), nil
	case NavPrev:
		step = -1
	case NavNext:
		step = 1
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	switch mode {
	case ViewMonth:
		return AddMonthsClamped(selected, step), nil
	case ViewWeek:
		return selected.AddDate(0, 0, 7*step), nil
	case ViewDay:
		return selected.AddDate(0, 0, step), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownView, mode)
	}
}

// VisibleRange диапазон дат, который покрывает режим отображения
func VisibleRange(mode ViewMode, selected time.Time) (DateRange, error) {
	selected = DateOnly(selected)

	switch mode {
	case ViewMonth:
		start, end := monthGridBounds(selected)
		return DateRange{Start: start, End: end}, nil
	case ViewWeek:
		start := StartOfWeek(selected)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case ViewDay:
		return DateRange{Start: selected, End: selected}, nil
	default:
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownView, mode)
	}
}

// monthGridBounds первое воскресенье и последняя суббота сетки месяца
func monthGridBounds(selected time.Time) (time.Time, time.Time) {
	start := StartOfWeek(StartOfMonth(selected))
	last := EndOfMonth(selected)
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))
	return start, end
}

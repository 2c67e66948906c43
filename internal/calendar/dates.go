package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("calendar: invalid date range")

	// ErrUnknownPreset возвращается при неизвестном пресете диапазона
	ErrUnknownPreset = errors.New("calendar: unknown date range preset")
)

// DateOnly отбрасывает время и часовой пояс: полночь UTC той же календарной даты
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfWeek воскресенье недели, содержащей дату
func StartOfWeek(t time.Time) time.Time {
	day := DateOnly(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfMonth первое число месяца
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth последнее число месяца
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// AddMonthsClamped сдвигает дату на n месяцев, ограничивая день концом целевого месяца
// 31 января + 1 месяц -> 28 (29) февраля
func AddMonthsClamped(t time.Time, n int) time.Time {
	first := StartOfMonth(t).AddDate(0, n, 0)
	last := EndOfMonth(first).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DateRange диапазон дат, обе границы включены
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains проверяет попадание даты в диапазон включительно
func (r DateRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(r.Start)) && !d.After(DateOnly(r.End))
}

// Days количество дней в диапазоне
func (r DateRange) Days() int {
	return int(DateOnly(r.End).Sub(DateOnly(r.Start)).Hours()/24) + 1
}

// String диапазон в виде YYYY-MM-DD..YYYY-MM-DD
func (r DateRange) String() string {
	return r.Start.Format(domain.DateFormat) + ".." + r.End.Format(domain.DateFormat)
}

// RangePreset пресет диапазона дат для фильтра
type RangePreset string

const (
	RangeToday     RangePreset = "today"
	RangeThisWeek  RangePreset = "this-week"
	RangeThisMonth RangePreset = "this-month"
	RangeLastWeek  RangePreset = "last-week"
	RangeLastMonth RangePreset = "last-month"
	RangeCustom    RangePreset = "custom"
)

// ResolveRange вычисляет диапазон дат пресета относительно today
// Для custom обязательны обе границы, end не раньше start
func ResolveRange(preset RangePreset, today time.Time, customStart, customEnd *time.Time) (DateRange, error) {
	today = DateOnly(today)

	switch preset {
	case RangeToday:
		return DateRange{Start: today, End: today}, nil

	case RangeThisWeek:
		start := StartOfWeek(today)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil

	case RangeLastWeek:
		start := StartOfWeek(today).AddDate(0, 0, -7)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil

	case RangeThisMonth:
		return DateRange{Start: StartOfMonth(today), End: EndOfMonth(today)}, nil

	case RangeLastMonth:
		prev := StartOfMonth(today).AddDate(0, -1, 0)
		return DateRange{Start: prev, End: EndOfMonth(prev)}, nil

	case RangeCustom:
		if customStart == nil || customEnd == nil {
			return DateRange{}, fmt.Errorf("%w: custom range requires start and end", ErrInvalidRange)
		}
		start, end := DateOnly(*customStart), DateOnly(*customEnd)
		if end.Before(start) {
			return DateRange{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange,
				end.Format(domain.DateFormat), start.Format(domain.DateFormat))
		}
		return DateRange{Start: start, End: end}, nil

	default:
		return DateRange{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}

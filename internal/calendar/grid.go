package calendar

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// MonthCell день в сетке месяца
type MonthCell struct {
	Date    time.Time
	Day     int
	InMonth bool
	IsToday bool
	Count   int
	Preview []*domain.Appointment // Не больше previewLimit записей по возрастанию startTime
	More    int                   // Сколько записей не вошло в превью ("+K")
}

// MonthGrid сетка месяца: недели с воскресенья по субботу
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][7]MonthCell
}

// BuildMonth строит сетку месяца выбранной даты
// Сетка начинается с воскресенья и включает дни соседних месяцев
func BuildMonth(selected, today time.Time, index *Index, previewLimit int) MonthGrid {
	if previewLimit < 0 {
		previewLimit = 0
	}
	selected = DateOnly(selected)
	start, end := monthGridBounds(selected)

	grid := MonthGrid{Year: selected.Year(), Month: selected.Month()}

	for weekStart := start; !weekStart.After(end); weekStart = weekStart.AddDate(0, 0, 7) {
		var week [7]MonthCell
		for i := 0; i < 7; i++ {
			day := weekStart.AddDate(0, 0, i)
			week[i] = buildMonthCell(day, selected, today, index, previewLimit)
		}
		grid.Weeks = append(grid.Weeks, week)
	}

	return grid
}

func buildMonthCell(day, selected, today time.Time, index *Index, previewLimit int) MonthCell {
	appointments := index.ForDate(day)

	sorted := make([]*domain.Appointment, len(appointments))
	copy(sorted, appointments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})

	preview := sorted
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}

	return MonthCell{
		Date:    day,
		Day:     day.Day(),
		InMonth: day.Month() == selected.Month() && day.Year() == selected.Year(),
		IsToday: IsSameDay(day, today),
		Count:   len(sorted),
		Preview: preview,
		More:    len(sorted) - len(preview),
	}
}

// SlotRow строка сетки недели: один слот по всем дням
type SlotRow struct {
	Slot  types.TimeString
	Cells []Cell
}

// WeekGrid сетка недели: строки - слоты, колонки - дни с воскресенья
type WeekGrid struct {
	Days [7]time.Time
	Rows []SlotRow
}

// BuildWeek строит сетку недели, содержащей выбранную дату
func BuildWeek(selected time.Time, grid SlotGrid, classifier *Classifier, staffID int64) WeekGrid {
	start := StartOfWeek(selected)

	var week WeekGrid
	for i := 0; i < 7; i++ {
		week.Days[i] = start.AddDate(0, 0, i)
	}

	week.Rows = make([]SlotRow, 0, len(grid.Labels))
	for _, slot := range grid.Labels {
		row := SlotRow{Slot: slot, Cells: make([]Cell, 0, 7)}
		for _, day := range week.Days {
			row.Cells = append(row.Cells, classifier.Classify(staffID, day, slot))
		}
		week.Rows = append(week.Rows, row)
	}

	return week
}

// DayGrid сетка одного дня
type DayGrid struct {
	Date  time.Time
	Hours domain.WorkingHours
	Rows  []Cell
}

// BuildDay строит сетку выбранного дня
func BuildDay(selected time.Time, grid SlotGrid, classifier *Classifier, staffID int64) DayGrid {
	day := DateOnly(selected)

	rows := make([]Cell, 0, len(grid.Labels))
	for _, slot := range grid.Labels {
		rows = append(rows, classifier.Classify(staffID, day, slot))
	}

	return DayGrid{
		Date:  day,
		Hours: classifier.Hours(staffID, day),
		Rows:  rows,
	}
}

// CountClasses подсчитывает ячейки по классам доступности
func CountClasses(cells []Cell) map[CellClass]int {
	counts := make(map[CellClass]int, 4)
	for _, c := range cells {
		counts[c.Class]++
	}
	return counts
}

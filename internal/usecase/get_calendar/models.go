package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request параметры отображения календаря
type Request struct {
	View     string     // month | week | day, пусто - month
	Date     *time.Time // Выбранная дата, nil - сегодня
	Action   string     // prev | next | today, пусто - без навигации
	StaffID  *int64     // nil - все мастера
	Narrow   bool       // Узкий экран: меньше превью в ячейке месяца
	Category string
	Status   string
	Query    string
}

// Response построенная сетка календаря
// Заполнена ровно одна из Month, Week, Day
type Response struct {
	View     calendar.ViewMode
	Selected time.Time
	Today    time.Time
	Range    calendar.DateRange
	Total    int // Записей в видимом диапазоне после фильтров

	Month *calendar.MonthGrid
	Week  *calendar.WeekGrid
	Day   *calendar.DayGrid

	Counts map[calendar.CellClass]int // Только для week и day
}

// params разобранные параметры запроса
type params struct {
	view     calendar.ViewMode
	action   calendar.NavAction
	category calendar.CategoryKey
	status   *domain.AppointmentStatus
}

package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type MonthCellResponse struct {
	Date    string                          `json:"date"`
	Day     int                             `json:"day"`
	InMonth bool                            `json:"inMonth"`
	IsToday bool                            `json:"isToday"`
	Count   int                             `json:"count"`
	Preview []*handlers.AppointmentResponse `json:"preview"`
	More    int                             `json:"more"`
}

type MonthResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Weeks [][]MonthCellResponse `json:"weeks"`
}

type CellResponse struct {
	Date         string                          `json:"date"`
	Slot         string                          `json:"slot"`
	Class        string                          `json:"class"`
	Appointments []*handlers.AppointmentResponse `json:"appointments,omitempty"`
}

type SlotRowResponse struct {
	Slot  string         `json:"slot"`
	Cells []CellResponse `json:"cells"`
}

type WeekResponse struct {
	Days []string          `json:"days"`
	Rows []SlotRowResponse `json:"rows"`
}

type HoursResponse struct {
	IsWorking  bool    `json:"isWorking"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`
}

type DayResponse struct {
	Date  string         `json:"date"`
	Hours HoursResponse  `json:"hours"`
	Rows  []CellResponse `json:"rows"`
}

// CalendarResponse HTTP модель сетки календаря
type CalendarResponse struct {
	View     string         `json:"view"`
	Selected string         `json:"selected"`
	Today    string         `json:"today"`
	Range    RangeResponse  `json:"range"`
	Total    int            `json:"total"`
	Month    *MonthResponse `json:"month,omitempty"`
	Week     *WeekResponse  `json:"week,omitempty"`
	Day      *DayResponse   `json:"day,omitempty"`
	Counts   map[string]int `json:"counts,omitempty"`
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func optionalTime(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		View:     string(resp.View),
		Selected: formatDate(resp.Selected),
		Today:    formatDate(resp.Today),
		Range:    RangeResponse{Start: formatDate(resp.Range.Start), End: formatDate(resp.Range.End)},
		Total:    resp.Total,
	}

	if resp.Month != nil {
		out.Month = fromMonth(resp.Month)
	}
	if resp.Week != nil {
		out.Week = fromWeek(resp.Week)
	}
	if resp.Day != nil {
		out.Day = fromDay(resp.Day)
	}

	if resp.Counts != nil {
		out.Counts = make(map[string]int, len(resp.Counts))
		for class, n := range resp.Counts {
			out.Counts[string(class)] = n
		}
	}

	return out
}

func fromMonth(m *calendar.MonthGrid) *MonthResponse {
	weeks := make([][]MonthCellResponse, 0, len(m.Weeks))
	for _, week := range m.Weeks {
		cells := make([]MonthCellResponse, 0, len(week))
		for _, c := range week {
			cells = append(cells, MonthCellResponse{
				Date:    formatDate(c.Date),
				Day:     c.Day,
				InMonth: c.InMonth,
				IsToday: c.IsToday,
				Count:   c.Count,
				Preview: handlers.FromAppointments(c.Preview),
				More:    c.More,
			})
		}
		weeks = append(weeks, cells)
	}

	return &MonthResponse{Year: m.Year, Month: int(m.Month), Weeks: weeks}
}

func fromCell(c calendar.Cell) CellResponse {
	out := CellResponse{
		Date:  formatDate(c.Date),
		Slot:  c.Slot.String(),
		Class: string(c.Class),
	}
	if len(c.Appointments) > 0 {
		out.Appointments = handlers.FromAppointments(c.Appointments)
	}
	return out
}

func fromWeek(w *calendar.WeekGrid) *WeekResponse {
	days := make([]string, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, formatDate(d))
	}

	rows := make([]SlotRowResponse, 0, len(w.Rows))
	for _, row := range w.Rows {
		cells := make([]CellResponse, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, fromCell(c))
		}
		rows = append(rows, SlotRowResponse{Slot: row.Slot.String(), Cells: cells})
	}

	return &WeekResponse{Days: days, Rows: rows}
}

func fromDay(d *calendar.DayGrid) *DayResponse {
	rows := make([]CellResponse, 0, len(d.Rows))
	for _, c := range d.Rows {
		rows = append(rows, fromCell(c))
	}

	return &DayResponse{
		Date: formatDate(d.Date),
		Hours: HoursResponse{
			IsWorking:  d.Hours.IsWorking,
			Start:      d.Hours.Start.String(),
			End:        d.Hours.End.String(),
			LunchStart: optionalTime(d.Hours.LunchStart),
			LunchEnd:   optionalTime(d.Hours.LunchEnd),
		},
		Rows: rows,
	}
}

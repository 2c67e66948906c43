package working_hours

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/workinghours"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// DayHours рабочее окно одного дня, индекс в массиве - день недели с воскресенья
type DayHours struct {
	Weekday    string  `json:"weekday,omitempty"`
	IsWorking  bool    `json:"isWorking"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`
}

// TemplateRequest тело перезаписи графика
type TemplateRequest struct {
	Days []DayHours `json:"days"`
}

// ToDomain собирает недельный шаблон, требуется ровно 7 дней
func (r *TemplateRequest) ToDomain() (domain.WeeklyTemplate, error) {
	var week domain.WeeklyTemplate
	if len(r.Days) != len(week) {
		return week, domain.ValidationErrors{"days": fmt.Sprintf("ожидается %d дней, получено %d", len(week), len(r.Days))}
	}

	for i, d := range r.Days {
		week[i] = domain.WorkingHours{
			IsWorking:  d.IsWorking,
			Start:      types.TimeString(d.Start),
			End:        types.TimeString(d.End),
			LunchStart: toTime(d.LunchStart),
			LunchEnd:   toTime(d.LunchEnd),
		}
	}
	return week, nil
}

func toTime(s *string) *types.TimeString {
	if s == nil || *s == "" {
		return nil
	}
	t := types.TimeString(*s)
	return &t
}

func fromTime(t *types.TimeString) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

type TemplateResponse struct {
	StaffID int64      `json:"staffId"`
	Custom  bool       `json:"custom"`
	Days    []DayHours `json:"days"`
}

func FromTemplate(tpl *workinghours.Template) *TemplateResponse {
	days := make([]DayHours, 0, len(tpl.Week))
	for i, h := range tpl.Week {
		day := DayHours{Weekday: time.Weekday(i).String(), IsWorking: h.IsWorking}
		if h.IsWorking {
			day.Start = h.Start.String()
			day.End = h.End.String()
			day.LunchStart = fromTime(h.LunchStart)
			day.LunchEnd = fromTime(h.LunchEnd)
		}
		days = append(days, day)
	}

	return &TemplateResponse{StaffID: tpl.StaffID, Custom: tpl.Custom, Days: days}
}

package calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// HoursResolver возвращает рабочее окно сотрудника на день недели
type HoursResolver interface {
	Resolve(staffID int64, weekday time.Weekday) domain.WorkingHours
}

// DefaultResolver общий график салона, staffID не учитывается
type DefaultResolver struct{}

// Resolve возвращает окно из шаблона по умолчанию
func (DefaultResolver) Resolve(_ int64, weekday time.Weekday) domain.WorkingHours {
	return domain.DefaultWeeklyTemplate().Day(weekday)
}

// TemplateResolver индивидуальные графики сотрудников с откатом на общий шаблон
type TemplateResolver struct {
	Default   domain.WeeklyTemplate
	Overrides map[int64]domain.WeeklyTemplate
}

// NewTemplateResolver создает резолвер с общим шаблоном по умолчанию
func NewTemplateResolver(overrides map[int64]domain.WeeklyTemplate) *TemplateResolver {
	if overrides == nil {
		overrides = make(map[int64]domain.WeeklyTemplate)
	}
	return &TemplateResolver{
		Default:   domain.DefaultWeeklyTemplate(),
		Overrides: overrides,
	}
}

// Resolve возвращает окно сотрудника, а при отсутствии его графика - общее окно
func (r *TemplateResolver) Resolve(staffID int64, weekday time.Weekday) domain.WorkingHours {
	if tpl, ok := r.Overrides[staffID]; ok {
		return tpl.Day(weekday)
	}
	return r.Default.Day(weekday)
}

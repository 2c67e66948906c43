package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus статус записи клиента
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

// AppointmentStatuses все допустимые статусы
var AppointmentStatuses = []AppointmentStatus{
	AppointmentScheduled,
	AppointmentCompleted,
	AppointmentCancelled,
	AppointmentNoShow,
}

// IsValid проверяет, что статус известен
func (s AppointmentStatus) IsValid() bool {
	for _, status := range AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// AppointmentService позиция услуги в записи (денормализована на момент записи)
type AppointmentService struct {
	ServiceID       int64  `json:"serviceId"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration"`
	Price           int64  `json:"price"`
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID int64

	CustomerID    int64
	CustomerName  string
	CustomerPhone string

	Date      time.Time // только дата, время 00:00
	StartTime types.TimeString
	EndTime   types.TimeString

	Services []AppointmentService

	EmployeeID   int64
	EmployeeName string

	Status AppointmentStatus
	Memo   *string
	Amount *int64 // Переопределенная итоговая сумма

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateKey дата записи в формате YYYY-MM-DD
func (a *Appointment) DateKey() string {
	return a.Date.Format(DateFormat)
}

// TotalDuration суммарная длительность услуг в минутах
func (a *Appointment) TotalDuration() int {
	total := 0
	for _, s := range a.Services {
		total += s.DurationMinutes
	}
	return total
}

// ServicesTotal сумма цен услуг
func (a *Appointment) ServicesTotal() int64 {
	var total int64
	for _, s := range a.Services {
		total += s.Price
	}
	return total
}

// Price итоговая цена: Amount, если задан, иначе сумма услуг
func (a *Appointment) Price() int64 {
	if a.Amount != nil {
		return *a.Amount
	}
	return a.ServicesTotal()
}

// DerivedEndTime время окончания, вычисленное по длительности услуг
func (a *Appointment) DerivedEndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.TotalDuration())
}

// PrimaryServiceID первая услуга записи, 0 если услуг нет
func (a *Appointment) PrimaryServiceID() int64 {
	if len(a.Services) == 0 {
		return 0
	}
	return a.Services[0].ServiceID
}

// IsActive возвращает true, если запись занимает время мастера
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentScheduled || a.Status == AppointmentCompleted
}

// AppointmentFilter фильтр выборки записей из хранилища
type AppointmentFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	EmployeeID *int64
	CustomerID *int64
	Status     *AppointmentStatus
}

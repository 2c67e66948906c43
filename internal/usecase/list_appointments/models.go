package list_appointments

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request фильтры и сортировка списка записей
type Request struct {
	Range    string     // Пресет периода, пусто - this-month или custom при заданных границах
	Start    *time.Time // Только для custom
	End      *time.Time // Только для custom
	StaffID    *int64
	CustomerID *int64
	Category   string
	Status     string
	Query      string
	Sort       string
}

// Response отфильтрованный и отсортированный список
type Response struct {
	Range        calendar.DateRange
	Appointments []*domain.Appointment
	TotalAmount  int64 // Сумма итоговых цен
}

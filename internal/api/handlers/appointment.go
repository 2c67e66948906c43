package handlers

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentServiceResponse услуга в составе записи
type AppointmentServiceResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Price    int64  `json:"price"`
}

// AppointmentResponse запись клиента
type AppointmentResponse struct {
	ID            int64                        `json:"id"`
	CustomerID    int64                        `json:"customerId"`
	CustomerName  string                       `json:"customerName"`
	CustomerPhone string                       `json:"customerPhone"`
	Date          string                       `json:"date"`
	StartTime     string                       `json:"startTime"`
	EndTime       string                       `json:"endTime"`
	Services      []AppointmentServiceResponse `json:"services"`
	EmployeeID    int64                        `json:"employeeId"`
	EmployeeName  string                       `json:"employeeName"`
	Status        string                       `json:"status"`
	Memo          *string                      `json:"memo,omitempty"`
	Amount        *int64                       `json:"amount,omitempty"`
	TotalPrice    int64                        `json:"totalPrice"`
	CreatedAt     string                       `json:"createdAt"`
	UpdatedAt     string                       `json:"updatedAt"`
}

// FromAppointment конвертирует доменную запись в HTTP модель
func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	services := make([]AppointmentServiceResponse, 0, len(a.Services))
	for _, s := range a.Services {
		services = append(services, AppointmentServiceResponse{
			ID:       s.ServiceID,
			Name:     s.Name,
			Duration: s.DurationMinutes,
			Price:    s.Price,
		})
	}

	return &AppointmentResponse{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		Date:          a.DateKey(),
		StartTime:     a.StartTime.String(),
		EndTime:       a.EndTime.String(),
		Services:      services,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Status:        string(a.Status),
		Memo:          a.Memo,
		Amount:        a.Amount,
		TotalPrice:    a.Price(),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromAppointments конвертирует список записей
func FromAppointments(appointments []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromAppointment(a))
	}
	return out
}

package salonapi

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// customerDTO клиент в формате REST API
type customerDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Memo      *string `json:"memo,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

func (d customerDTO) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:        d.ID,
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Memo:      d.Memo,
		CreatedAt: parseTimestamp(d.CreatedAt),
		UpdatedAt: parseTimestamp(d.UpdatedAt),
	}
}

func customerFromDomain(c *domain.Customer) customerDTO {
	return customerDTO{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		Memo:  c.Memo,
	}
}

// appointmentServiceDTO услуга в составе записи
type appointmentServiceDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Price    int64  `json:"price"`
}

// appointmentDTO запись в формате REST API
type appointmentDTO struct {
	ID            int64                   `json:"id"`
	CustomerID    int64                   `json:"customerId"`
	CustomerName  string                  `json:"customerName"`
	CustomerPhone string                  `json:"customerPhone"`
	Date          string                  `json:"date"`
	StartTime     string                  `json:"startTime"`
	EndTime       string                  `json:"endTime"`
	Services      []appointmentServiceDTO `json:"services"`
	EmployeeID    int64                   `json:"employeeId"`
	EmployeeName  string                  `json:"employeeName"`
	Status        string                  `json:"status"`
	Memo          *string                 `json:"memo,omitempty"`
	Amount        *int64                  `json:"amount,omitempty"`
	CreatedAt     string                  `json:"createdAt"`
	UpdatedAt     string                  `json:"updatedAt"`
}

// appointmentListDTO ответ GET /appointments
type appointmentListDTO struct {
	Appointments []appointmentDTO `json:"appointments"`
	Total        int              `json:"total"`
	TotalAmount  int64            `json:"totalAmount"`
}

func (d appointmentDTO) toDomain() (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateFormat, d.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment date %q", ErrInvalidResponse, d.Date)
	}
	start, err := types.NewTimeStringFromString(d.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment start %q", ErrInvalidResponse, d.StartTime)
	}
	end, err := types.NewTimeStringFromString(d.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment end %q", ErrInvalidResponse, d.EndTime)
	}

	services := make([]domain.AppointmentService, 0, len(d.Services))
	for _, s := range d.Services {
		services = append(services, domain.AppointmentService{
			ServiceID:       s.ID,
			Name:            s.Name,
			DurationMinutes: s.Duration,
			Price:           s.Price,
		})
	}

	return &domain.Appointment{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		Services:      services,
		EmployeeID:    d.EmployeeID,
		EmployeeName:  d.EmployeeName,
		Status:        domain.AppointmentStatus(d.Status),
		Memo:          d.Memo,
		Amount:        d.Amount,
		CreatedAt:     parseTimestamp(d.CreatedAt),
		UpdatedAt:     parseTimestamp(d.UpdatedAt),
	}, nil
}

// createAppointmentDTO тело POST /appointments
type createAppointmentDTO struct {
	CustomerID int64   `json:"customerId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	StaffID    int64   `json:"staffId"`
	ServiceIDs []int64 `json:"serviceIds"`
	Memo       *string `json:"memo,omitempty"`
	Amount     *int64  `json:"amount,omitempty"`
}

type statusDTO struct {
	Status string `json:"status"`
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

package salonapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
)

// AppointmentRepository репозиторий записей поверх удаленного API
//
// Транзакции и блокировки PostgreSQL сюда не распространяются:
// удаленный API сам проверяет пересечения при создании
type AppointmentRepository struct {
	client *Client
}

// NewAppointmentRepository создает репозиторий записей
func NewAppointmentRepository(client *Client) *AppointmentRepository {
	return &AppointmentRepository{client: client}
}

func mapAppointmentErr(err error) error {
	if errors.Is(err, errNotFound) {
		return appointmentRepo.ErrAppointmentNotFound
	}
	return err
}

// Create создает запись. Удаленный API заново выводит время окончания и цены из услуг
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	serviceIDs := make([]int64, 0, len(a.Services))
	for _, s := range a.Services {
		serviceIDs = append(serviceIDs, s.ServiceID)
	}

	body := createAppointmentDTO{
		CustomerID: a.CustomerID,
		Date:       a.DateKey(),
		StartTime:  a.StartTime.String(),
		StaffID:    a.EmployeeID,
		ServiceIDs: serviceIDs,
		Memo:       a.Memo,
		Amount:     a.Amount,
	}

	var out appointmentDTO
	if err := r.client.do(ctx, http.MethodPost, "/appointments", nil, body, &out); err != nil {
		return nil, fmt.Errorf("Create - %w", err)
	}

	return out.toDomain()
}

// GetByID получает запись по ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var out appointmentDTO
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/appointments/%d", id), nil, nil, &out); err != nil {
		return nil, mapAppointmentErr(err)
	}
	return out.toDomain()
}

// List получает записи с фильтрацией, фильтр переводится в query параметры списка
func (r *AppointmentRepository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	params := url.Values{}
	if filter.StartDate != nil || filter.EndDate != nil {
		params.Set("range", "custom")
	}
	if filter.StartDate != nil {
		params.Set("start", filter.StartDate.Format(domain.DateFormat))
	}
	if filter.EndDate != nil {
		params.Set("end", filter.EndDate.Format(domain.DateFormat))
	}
	if filter.EmployeeID != nil {
		params.Set("staffId", strconv.FormatInt(*filter.EmployeeID, 10))
	}
	if filter.CustomerID != nil {
		params.Set("customerId", strconv.FormatInt(*filter.CustomerID, 10))
	}
	if filter.Status != nil {
		params.Set("status", string(*filter.Status))
	}

	var out appointmentListDTO
	if err := r.client.do(ctx, http.MethodGet, "/appointments", params, nil, &out); err != nil {
		return nil, fmt.Errorf("List - %w", err)
	}

	appointments := make([]*domain.Appointment, 0, len(out.Appointments))
	for _, dto := range out.Appointments {
		a, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("List - %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}

// UpdateStatus меняет статус записи
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	body := statusDTO{Status: string(status)}
	if err := r.client.do(ctx, http.MethodPatch, fmt.Sprintf("/appointments/%d/status", id), nil, body, nil); err != nil {
		return mapAppointmentErr(err)
	}
	return nil
}

// Delete удаляет запись, подтверждение передается удаленному API
func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	params := url.Values{"confirm": []string{"true"}}
	if err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), params, nil, nil); err != nil {
		return mapAppointmentErr(err)
	}
	return nil
}

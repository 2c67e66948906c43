package salonapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// CustomerRepository репозиторий клиентов поверх удаленного API
// Ошибки "не найдено" совпадают с ошибками PostgreSQL репозитория
type CustomerRepository struct {
	client *Client
}

// NewCustomerRepository создает репозиторий клиентов
func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

func mapCustomerErr(err error) error {
	if errors.Is(err, errNotFound) {
		return customerRepo.ErrCustomerNotFound
	}
	return err
}

// Create создает клиента
func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	var out customerDTO
	if err := r.client.do(ctx, http.MethodPost, "/customers", nil, customerFromDomain(c), &out); err != nil {
		return nil, fmt.Errorf("Create - %w", err)
	}
	return out.toDomain(), nil
}

// GetByID получает клиента по ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var out customerDTO
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil, &out); err != nil {
		return nil, mapCustomerErr(err)
	}
	return out.toDomain(), nil
}

// List возвращает клиентов, query - поиск по имени или телефону
func (r *CustomerRepository) List(ctx context.Context, query string) ([]*domain.Customer, error) {
	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("q", q)
	}

	var out []customerDTO
	if err := r.client.do(ctx, http.MethodGet, "/customers", params, nil, &out); err != nil {
		return nil, fmt.Errorf("List - %w", err)
	}

	customers := make([]*domain.Customer, 0, len(out))
	for _, dto := range out {
		customers = append(customers, dto.toDomain())
	}
	return customers, nil
}

// Update обновляет клиента
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	var out customerDTO
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", c.ID), nil, customerFromDomain(c), &out); err != nil {
		return nil, mapCustomerErr(err)
	}
	return out.toDomain(), nil
}

// Delete удаляет клиента, подтверждение передается удаленному API
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	params := url.Values{"confirm": []string{"true"}}
	if err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), params, nil, nil); err != nil {
		return mapCustomerErr(err)
	}
	return nil
}

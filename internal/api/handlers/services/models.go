package services

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

type PriceOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ServiceRequest тело создания и обновления услуги
type ServiceRequest struct {
	Name         string        `json:"name"`
	CategoryID   *int64        `json:"categoryId,omitempty"`
	Category     string        `json:"category"`
	BasePrice    int64         `json:"basePrice"`
	Duration     int           `json:"duration"`
	Active       *bool         `json:"active,omitempty"`
	PriceOptions []PriceOption `json:"priceOptions"`
}

func (r *ServiceRequest) ToServiceInput() catalog.ServiceInput {
	var options []domain.PriceOption
	for _, o := range r.PriceOptions {
		options = append(options, domain.PriceOption{Name: o.Name, Price: o.Price})
	}

	return catalog.ServiceInput{
		Name:            r.Name,
		CategoryID:      r.CategoryID,
		Category:        r.Category,
		BasePrice:       r.BasePrice,
		DurationMinutes: r.Duration,
		Active:          r.Active,
		PriceOptions:    options,
	}
}

type ServiceResponse struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	CategoryID   *int64        `json:"categoryId,omitempty"`
	Category     string        `json:"category"`
	BasePrice    int64         `json:"basePrice"`
	Duration     int           `json:"duration"`
	Active       bool          `json:"active"`
	PriceOptions []PriceOption `json:"priceOptions"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
}

func FromDomain(s *domain.Service) *ServiceResponse {
	options := make([]PriceOption, 0, len(s.PriceOptions))
	for _, o := range s.PriceOptions {
		options = append(options, PriceOption{Name: o.Name, Price: o.Price})
	}

	return &ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		CategoryID:   s.CategoryID,
		Category:     s.Category,
		BasePrice:    s.BasePrice,
		Duration:     s.DurationMinutes,
		Active:       s.Active,
		PriceOptions: options,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
}

func FromDomainList(services []*domain.Service) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomain(s))
	}
	return out
}

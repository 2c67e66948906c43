package customers

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customersService "github.com/m04kA/SMC-SalonService/internal/service/customers"
)

// CustomerRequest тело создания и обновления клиента
type CustomerRequest struct {
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Email *string `json:"email,omitempty"`
	Memo  *string `json:"memo,omitempty"`
}

func (r *CustomerRequest) ToServiceInput() customersService.CustomerInput {
	return customersService.CustomerInput{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
		Memo:  r.Memo,
	}
}

type CustomerResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Memo      *string `json:"memo,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func FromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Memo:      c.Memo,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func FromDomainList(customers []*domain.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromDomain(c))
	}
	return out
}

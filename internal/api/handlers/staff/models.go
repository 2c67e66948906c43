package staff

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	staffService "github.com/m04kA/SMC-SalonService/internal/service/staff"
)

// StaffRequest тело создания и обновления сотрудника
type StaffRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	Position         string `json:"position"`
	Status           string `json:"status"`
	MonthlyCustomers int    `json:"monthlyCustomers"`
	MonthlyServices  int    `json:"monthlyServices"`
}

func (r *StaffRequest) ToServiceInput() staffService.StaffInput {
	return staffService.StaffInput{
		Name:             r.Name,
		Phone:            r.Phone,
		Role:             r.Role,
		Position:         r.Position,
		Status:           r.Status,
		MonthlyCustomers: r.MonthlyCustomers,
		MonthlyServices:  r.MonthlyServices,
	}
}

type StaffResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	Role                string `json:"role"`
	Position            string `json:"position"`
	Status              string `json:"status"`
	CanTakeAppointments bool   `json:"canTakeAppointments"`
	MonthlyCustomers    int    `json:"monthlyCustomers"`
	MonthlyServices     int    `json:"monthlyServices"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

func FromDomain(s *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:                  s.ID,
		Name:                s.Name,
		Phone:               s.Phone,
		Role:                s.Role,
		Position:            string(s.Position),
		Status:              string(s.Status),
		CanTakeAppointments: s.CanTakeAppointments(),
		MonthlyCustomers:    s.MonthlyCustomers,
		MonthlyServices:     s.MonthlyServices,
		CreatedAt:           s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}

func FromDomainList(staff []*domain.Staff) []*StaffResponse {
	out := make([]*StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, FromDomain(s))
	}
	return out
}

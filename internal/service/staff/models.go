package staff

import (
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// StaffInput данные формы сотрудника
// Пустой статус при создании означает active
type StaffInput struct {
	Name             string
	Phone            string
	Role             string
	Position         string
	Status           string
	MonthlyCustomers int
	MonthlyServices  int
}

// Validate собирает ошибки всех полей формы
func (in StaffInput) Validate() error {
	errs := domain.ValidationErrors{}

	domain.ValidateName(errs, "name", in.Name)
	if strings.TrimSpace(in.Phone) != "" {
		domain.ValidatePhone(errs, "phone", in.Phone)
	}
	if len([]rune(in.Role)) > domain.MaxNameLength {
		errs.Add("role", "слишком длинное значение")
	}
	if !domain.StaffPosition(in.Position).IsValid() {
		errs.Add("position", "неизвестная должность")
	}
	if in.Status != "" && !domain.StaffStatus(in.Status).IsValid() {
		errs.Add("status", "неизвестный статус")
	}
	if in.MonthlyCustomers < 0 {
		errs.Add("monthlyCustomers", "значение не может быть отрицательным")
	}
	if in.MonthlyServices < 0 {
		errs.Add("monthlyServices", "значение не может быть отрицательным")
	}

	return errs.Err()
}

func (in StaffInput) toDomain() *domain.Staff {
	status := domain.StaffStatus(in.Status)
	if status == "" {
		status = domain.StaffActive
	}

	return &domain.Staff{
		Name:             strings.TrimSpace(in.Name),
		Phone:            strings.TrimSpace(in.Phone),
		Role:             strings.TrimSpace(in.Role),
		Position:         domain.StaffPosition(in.Position),
		Status:           status,
		MonthlyCustomers: in.MonthlyCustomers,
		MonthlyServices:  in.MonthlyServices,
	}
}

package customers

import (
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CustomerInput данные формы клиента (создание и обновление)
type CustomerInput struct {
	Name  string
	Phone string
	Email *string
	Memo  *string
}

// Validate собирает ошибки всех полей формы
func (in CustomerInput) Validate() error {
	errs := domain.ValidationErrors{}

	domain.ValidateName(errs, "name", in.Name)
	domain.ValidatePhone(errs, "phone", in.Phone)

	if in.Email != nil && *in.Email != "" && !strings.Contains(*in.Email, "@") {
		errs.Add("email", "некорректный адрес почты")
	}
	if in.Memo != nil && len([]rune(*in.Memo)) > domain.MaxMemoLength {
		errs.Add("memo", "слишком длинное значение")
	}

	return errs.Err()
}

func (in CustomerInput) toDomain() *domain.Customer {
	return &domain.Customer{
		Name:  strings.TrimSpace(in.Name),
		Phone: strings.TrimSpace(in.Phone),
		Email: in.Email,
		Memo:  in.Memo,
	}
}

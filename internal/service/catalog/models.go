package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceInput данные формы услуги
// Active = nil при создании означает активную услугу
type ServiceInput struct {
	Name            string
	CategoryID      *int64
	Category        string
	BasePrice       int64
	DurationMinutes int
	Active          *bool
	PriceOptions    []domain.PriceOption
}

// Validate собирает ошибки всех полей формы
func (in ServiceInput) Validate() error {
	errs := domain.ValidationErrors{}

	domain.ValidateName(errs, "name", in.Name)
	domain.ValidatePositive(errs, "basePrice", in.BasePrice)
	domain.ValidatePositive(errs, "duration", int64(in.DurationMinutes))
	if in.DurationMinutes > domain.MaxServiceDuration {
		errs.Add("duration", fmt.Sprintf("не больше %d минут", domain.MaxServiceDuration))
	}
	if in.CategoryID != nil && *in.CategoryID <= 0 {
		errs.Add("categoryId", "значение должно быть больше нуля")
	}
	for i, opt := range in.PriceOptions {
		field := fmt.Sprintf("priceOptions[%d]", i)
		if strings.TrimSpace(opt.Name) == "" {
			errs.Add(field, "обязательное поле")
		} else if opt.Price < 0 {
			errs.Add(field, "цена не может быть отрицательной")
		}
	}

	return errs.Err()
}

func (in ServiceInput) toDomain() *domain.Service {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	options := in.PriceOptions
	if options == nil {
		options = []domain.PriceOption{}
	}

	return &domain.Service{
		Name:            strings.TrimSpace(in.Name),
		CategoryID:      in.CategoryID,
		Category:        strings.TrimSpace(in.Category),
		BasePrice:       in.BasePrice,
		DurationMinutes: in.DurationMinutes,
		Active:          active,
		PriceOptions:    options,
	}
}

// CategoryInput данные формы категории
type CategoryInput struct {
	Name      string
	Color     string
	SortOrder int
	Active    *bool
}

// Validate собирает ошибки всех полей формы
func (in CategoryInput) Validate() error {
	errs := domain.ValidationErrors{}

	domain.ValidateName(errs, "name", in.Name)
	if len(in.Color) > domain.MaxColorLength {
		errs.Add("color", "слишком длинное значение")
	}
	if in.SortOrder < 0 || in.SortOrder > domain.MaxCategorySortOrder {
		errs.Add("sortOrder", fmt.Sprintf("значение от 0 до %d", domain.MaxCategorySortOrder))
	}

	return errs.Err()
}

func (in CategoryInput) toDomain() *domain.Category {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return &domain.Category{
		Name:      strings.TrimSpace(in.Name),
		Color:     strings.TrimSpace(in.Color),
		SortOrder: in.SortOrder,
		Active:    active,
	}
}

package adjust_prices

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest собирает ошибки полей и возвращает параметры изменения
func validateRequest(req *Request) (domain.PriceAdjustment, error) {
	errs := domain.ValidationErrors{}

	adjustment := domain.PriceAdjustment{
		Type:      domain.AdjustmentType(req.Type),
		Value:     req.Value,
		Direction: domain.AdjustmentDirection(req.Direction),
	}

	typeOK := adjustment.Type == domain.AdjustmentFixed || adjustment.Type == domain.AdjustmentPercent
	if !typeOK {
		errs.Add("type", "допустимые значения: fixed, percent")
	}
	directionOK := adjustment.Direction == domain.DirectionIncrease || adjustment.Direction == domain.DirectionDecrease
	if !directionOK {
		errs.Add("direction", "допустимые значения: increase, decrease")
	}
	if typeOK && directionOK {
		if err := adjustment.Validate(); err != nil {
			errs.Add("value", "некорректное значение")
		}
	}

	if !req.All {
		if len(req.ServiceIDs) == 0 {
			errs.Add("serviceIds", "выберите услуги или all")
		}
		for _, id := range req.ServiceIDs {
			if id <= 0 {
				errs.Add("serviceIds", "некорректный идентификатор услуги")
				break
			}
		}
	}

	return adjustment, errs.Err()
}

package workinghours

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Template график сотрудника
// Custom = false означает, что действует общий график салона
type Template struct {
	StaffID int64
	Week    domain.WeeklyTemplate
	Custom  bool
}

// validateTemplate проверяет каждый день, ключи ошибок вида days[3]
func validateTemplate(tpl domain.WeeklyTemplate) error {
	errs := domain.ValidationErrors{}
	for day, hours := range tpl {
		if err := hours.Validate(); err != nil {
			errs.Add(fmt.Sprintf("days[%d]", day), err.Error())
		}
	}
	return errs.Err()
}

package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP модель запроса на создание записи
type CreateAppointmentRequest struct {
	CustomerID int64   `json:"customerId"`
	StaffID    int64   `json:"staffId"`
	Date       string  `json:"date"`      // YYYY-MM-DD
	StartTime  string  `json:"startTime"` // HH:MM
	ServiceIDs []int64 `json:"serviceIds"`
	Memo       *string `json:"memo,omitempty"`
	Amount     *int64  `json:"amount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Неразборчивая дата возвращается как ошибка валидации поля date
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, domain.ValidationErrors{"date": "некорректный формат даты, ожидается YYYY-MM-DD"}
		}
		date = parsed
	}

	return &createAppointment.Request{
		CustomerID: r.CustomerID,
		StaffID:    r.StaffID,
		Date:       date,
		StartTime:  types.TimeString(r.StartTime),
		ServiceIDs: r.ServiceIDs,
		Memo:       r.Memo,
		Amount:     r.Amount,
	}, nil
}

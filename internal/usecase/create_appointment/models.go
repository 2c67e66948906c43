package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64
	StaffID    int64
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Метка слота, например "10:00"
	ServiceIDs []int64          // Порядок важен: первая услуга основная
	Memo       *string
	Amount     *int64 // Итоговая сумма вместо суммы услуг (опционально)
}

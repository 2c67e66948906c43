package list_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	listAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/list_appointments"
)

type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AppointmentListResponse список записей с итоговой суммой
type AppointmentListResponse struct {
	Range        RangeResponse                   `json:"range"`
	Appointments []*handlers.AppointmentResponse `json:"appointments"`
	Total        int                             `json:"total"`
	TotalAmount  int64                           `json:"totalAmount"`
}

// ParseRequest разбирает параметры фильтра из query string
// Используется и списком, и выгрузкой
func ParseRequest(r *http.Request) (*listAppointments.Request, error) {
	query := r.URL.Query()

	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		return nil, err
	}
	end, err := handlers.QueryDate(r, "end")
	if err != nil {
		return nil, err
	}
	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil {
		return nil, err
	}

	customerID, err := handlers.QueryInt64(r, "customerId")
	if err != nil {
		return nil, err
	}

	return &listAppointments.Request{
		Range:      query.Get("range"),
		Start:      start,
		End:        end,
		StaffID:    staffID,
		CustomerID: customerID,
		Category:   query.Get("category"),
		Status:     query.Get("status"),
		Query:      query.Get("q"),
		Sort:       query.Get("sort"),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *listAppointments.Response) *AppointmentListResponse {
	return &AppointmentListResponse{
		Range: RangeResponse{
			Start: resp.Range.Start.Format(domain.DateFormat),
			End:   resp.Range.End.Format(domain.DateFormat),
		},
		Appointments: handlers.FromAppointments(resp.Appointments),
		Total:        len(resp.Appointments),
		TotalAmount:  resp.TotalAmount,
	}
}

package adjust_prices

import (
	adjustPrices "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_prices"
)

// AdjustPricesRequest HTTP модель массового изменения цен
type AdjustPricesRequest struct {
	ServiceIDs []int64 `json:"serviceIds"`
	All        bool    `json:"all"`
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Direction  string  `json:"direction"`
}

func (r *AdjustPricesRequest) ToUseCaseRequest() *adjustPrices.Request {
	return &adjustPrices.Request{
		ServiceIDs: r.ServiceIDs,
		All:        r.All,
		Type:       r.Type,
		Value:      r.Value,
		Direction:  r.Direction,
	}
}

type ChangeResponse struct {
	ServiceID int64  `json:"serviceId"`
	Name      string `json:"name"`
	Before    int64  `json:"before"`
	After     int64  `json:"after"`
}

type AdjustPricesResponse struct {
	Changes []ChangeResponse `json:"changes"`
	Updated int              `json:"updated"`
}

func FromUseCaseResponse(resp *adjustPrices.Response) *AdjustPricesResponse {
	changes := make([]ChangeResponse, 0, len(resp.Changes))
	for _, c := range resp.Changes {
		changes = append(changes, ChangeResponse{
			ServiceID: c.ServiceID,
			Name:      c.Name,
			Before:    c.Before,
			After:     c.After,
		})
	}
	return &AdjustPricesResponse{Changes: changes, Updated: resp.Updated}
}

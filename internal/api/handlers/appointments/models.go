package appointments

// UpdateStatusRequest смена статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

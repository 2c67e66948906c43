package get_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// parseRequest разбирает строковые параметры запроса
func parseRequest(req *Request) (params, error) {
	var p params

	view, err := calendar.ParseViewMode(req.View)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p.view = view

	action, err := calendar.ParseNavAction(req.Action)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p.action = action

	category, err := calendar.ParseCategory(req.Category)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p.category = category

	if req.Status != "" && req.Status != "all" {
		status := domain.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return p, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
		}
		p.status = &status
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return p, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	return p, nil
}

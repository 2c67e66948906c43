package list_appointments

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type params struct {
	dateRange calendar.DateRange
	filters   calendar.Filters
	sort      calendar.SortKey
}

// parseRequest разбирает параметры и вычисляет период относительно today
func parseRequest(req *Request, today time.Time) (params, error) {
	var p params

	preset := calendar.RangePreset(strings.TrimSpace(req.Range))
	if preset == "" {
		preset = calendar.RangeThisMonth
		if req.Start != nil || req.End != nil {
			preset = calendar.RangeCustom
		}
	}

	dateRange, err := calendar.ResolveRange(preset, today, req.Start, req.End)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p.dateRange = dateRange

	category, err := calendar.ParseCategory(req.Category)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var status *domain.AppointmentStatus
	if req.Status != "" && req.Status != "all" {
		s := domain.AppointmentStatus(req.Status)
		if !s.IsValid() {
			return p, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
		}
		status = &s
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return p, fmt.Errorf("%w: staffId must be positive", ErrInvalidInput)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return p, fmt.Errorf("%w: customerId must be positive", ErrInvalidInput)
	}

	sortKey, err := calendar.ParseSortKey(req.Sort)
	if err != nil {
		return p, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p.sort = sortKey

	p.filters = calendar.Filters{
		Range:      &p.dateRange,
		StaffID:    req.StaffID,
		CustomerID: req.CustomerID,
		Category:   category,
		Status:     status,
		Query:      req.Query,
	}

	return p, nil
}

package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ErrUnknownMatchMode возвращается при неизвестном режиме сопоставления
var ErrUnknownMatchMode = errors.New("calendar: unknown match mode")

// MatchMode способ привязки записи к слоту
type MatchMode string

const (
	// MatchExact запись видна только в слоте, метка которого равна её startTime
	MatchExact MatchMode = "exact"
	// MatchContainment запись попадает в слот, если slotStart <= startTime < slotStart+step
	MatchContainment MatchMode = "containment"
)

// ParseMatchMode разбирает режим сопоставления, пустая строка - exact
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case "", MatchExact:
		return MatchExact, nil
	case MatchContainment:
		return MatchContainment, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchMode, s)
	}
}

type cellKey struct {
	date string
	slot types.TimeString
}

// Index индекс записей по паре (дата, слот)
// В одной ячейке может быть несколько записей, порядок вставки сохраняется
type Index struct {
	cells  map[cellKey][]*domain.Appointment
	byDate map[string][]*domain.Appointment
}

// NewIndex строит индекс по списку записей
// В режиме exact записи со временем вне сетки в ячейки не попадают,
// но учитываются в ForDate/CountByDate
func NewIndex(appointments []*domain.Appointment, grid SlotGrid, mode MatchMode) *Index {
	idx := &Index{
		cells:  make(map[cellKey][]*domain.Appointment),
		byDate: make(map[string][]*domain.Appointment),
	}

	for _, a := range appointments {
		if a == nil {
			continue
		}
		date := a.DateKey()
		idx.byDate[date] = append(idx.byDate[date], a)

		slot, ok := resolveSlot(a.StartTime, grid, mode)
		if !ok {
			continue
		}
		key := cellKey{date: date, slot: slot}
		idx.cells[key] = append(idx.cells[key], a)
	}

	return idx
}

func resolveSlot(start types.TimeString, grid SlotGrid, mode MatchMode) (types.TimeString, bool) {
	if mode == MatchContainment {
		return grid.SlotFor(start)
	}
	if grid.Contains(start) {
		return start, true
	}
	return "", false
}

// Lookup возвращает записи ячейки (дата, слот)
func (idx *Index) Lookup(date time.Time, slot types.TimeString) []*domain.Appointment {
	return idx.cells[cellKey{date: date.Format(domain.DateFormat), slot: slot}]
}

// ForDate возвращает все записи на дату в порядке вставки
func (idx *Index) ForDate(date time.Time) []*domain.Appointment {
	return idx.byDate[date.Format(domain.DateFormat)]
}

// CountByDate количество записей на дату
func (idx *Index) CountByDate(date time.Time) int {
	return len(idx.ForDate(date))
}

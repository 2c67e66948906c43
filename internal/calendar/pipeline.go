package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ErrUnknownSort возвращается при неизвестном ключе сортировки
var ErrUnknownSort = errors.New("calendar: unknown sort key")

// SortKey ключ сортировки списка
type SortKey string

const (
	SortNone       SortKey = "none"
	SortName       SortKey = "name"
	SortPrice      SortKey = "price"
	SortPopularity SortKey = "popularity"
	SortNewest     SortKey = "newest"
)

// ParseSortKey разбирает ключ сортировки, пустая строка - none
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortNone:
		return SortNone, nil
	case SortName, SortPrice, SortPopularity, SortNewest:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
	}
}

// Filters фильтры списка записей, все условия объединяются через И
// nil или пустое значение означает "все"
type Filters struct {
	Range      *DateRange
	StaffID    *int64
	CustomerID *int64
	Category   CategoryKey
	Status     *domain.AppointmentStatus
	Query      string
}

// Apply фильтрует и сортирует записи, исходный слайс не меняется
func Apply(appointments []*domain.Appointment, f Filters, key SortKey) []*domain.Appointment {
	return Sort(Filter(appointments, f), key)
}

// Filter возвращает записи, прошедшие все фильтры, в исходном порядке
func Filter(appointments []*domain.Appointment, f Filters) []*domain.Appointment {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	result := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a == nil {
			continue
		}
		if f.Range != nil && !f.Range.Contains(a.Date) {
			continue
		}
		if f.StaffID != nil && a.EmployeeID != *f.StaffID {
			continue
		}
		if f.CustomerID != nil && a.CustomerID != *f.CustomerID {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		if !MatchesCategory(serviceNames(a), f.Category) {
			continue
		}
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		result = append(result, a)
	}

	return result
}

func serviceNames(a *domain.Appointment) []string {
	names := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		names = append(names, s.Name)
	}
	return names
}

// matchesQuery регистронезависимый поиск по имени и телефону клиента, услугам и мастеру
func matchesQuery(a *domain.Appointment, query string) bool {
	fields := append([]string{a.CustomerName, a.CustomerPhone, a.EmployeeName}, serviceNames(a)...)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Sort возвращает отсортированную копию, сортировка стабильная
//
// name - по имени клиента
// price - по итоговой цене по возрастанию
// popularity - по частоте основной услуги записи в наборе, по убыванию
// newest - по времени создания по убыванию, при равенстве по ID по убыванию
func Sort(appointments []*domain.Appointment, key SortKey) []*domain.Appointment {
	sorted := make([]*domain.Appointment, len(appointments))
	copy(sorted, appointments)

	switch key {
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CustomerName < sorted[j].CustomerName
		})

	case SortPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price() < sorted[j].Price()
		})

	case SortPopularity:
		usage := ServiceUsage(sorted)
		sort.SliceStable(sorted, func(i, j int) bool {
			return usage[sorted[i].PrimaryServiceID()] > usage[sorted[j].PrimaryServiceID()]
		})

	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		})
	}

	return sorted
}

// ServiceUsage сколько раз каждая услуга встречается в записях
func ServiceUsage(appointments []*domain.Appointment) map[int64]int {
	usage := make(map[int64]int)
	for _, a := range appointments {
		for _, s := range a.Services {
			usage[s.ServiceID]++
		}
	}
	return usage
}

// SortServices сортирует каталог услуг теми же ключами
// usage - количество записей на каждую услугу
func SortServices(services []*domain.Service, key SortKey, usage map[int64]int) []*domain.Service {
	sorted := make([]*domain.Service, len(services))
	copy(sorted, services)

	switch key {
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})

	case SortPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].BasePrice < sorted[j].BasePrice
		})

	case SortPopularity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return usage[sorted[i].ID] > usage[sorted[j].ID]
		})

	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i], sorted[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		})
	}

	return sorted
}

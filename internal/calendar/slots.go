package calendar

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ErrInvalidSlotGrid возвращается при некорректных параметрах сетки слотов
var ErrInvalidSlotGrid = errors.New("calendar: invalid slot grid")

// SlotGrid упорядоченный список меток слотов с фиксированным шагом
// Метка - начало слота, слот занимает [метка, метка+Step)
type SlotGrid struct {
	Labels []types.TimeString
	Step   int
}

// GenerateSlots генерирует метки слотов от open до close с шагом step минут
// Слот, который заканчивается позже close, не генерируется
func GenerateSlots(open, close types.TimeString, step int) (SlotGrid, error) {
	if step <= 0 {
		return SlotGrid{}, fmt.Errorf("%w: step must be positive", ErrInvalidSlotGrid)
	}
	if err := open.Validate(); err != nil {
		return SlotGrid{}, fmt.Errorf("%w: %v", ErrInvalidSlotGrid, err)
	}
	if err := close.Validate(); err != nil {
		return SlotGrid{}, fmt.Errorf("%w: %v", ErrInvalidSlotGrid, err)
	}

	labels := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		// Проверяем, что слот не выходит за время закрытия
		if current.Minutes()+step > close.Minutes() {
			break
		}
		labels = append(labels, current)

		next, err := current.AddMinutes(step)
		if err != nil {
			break
		}
		current = next
	}

	return SlotGrid{Labels: labels, Step: step}, nil
}

// DefaultSlots сетка 09:00-18:00 с шагом 30 минут (последний слот 17:30)
func DefaultSlots() SlotGrid {
	grid, _ := GenerateSlots(domain.DefaultSlotStart, domain.DefaultSlotEnd, domain.DefaultSlotStepMinutes)
	return grid
}

// Contains проверяет, что метка принадлежит сетке
func (g SlotGrid) Contains(slot types.TimeString) bool {
	for _, label := range g.Labels {
		if label == slot {
			return true
		}
	}
	return false
}

// SlotFor возвращает слот, содержащий время t: label <= t < label+Step
func (g SlotGrid) SlotFor(t types.TimeString) (types.TimeString, bool) {
	if t.Validate() != nil {
		return "", false
	}
	minutes := t.Minutes()
	for _, label := range g.Labels {
		start := label.Minutes()
		if minutes >= start && minutes < start+g.Step {
			return label, true
		}
	}
	return "", false
}

// Overlaps проверяет пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, которые только граничат друг с другом, не пересекаются
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

package calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CellClass класс доступности ячейки календаря
type CellClass string

const (
	NonWorking CellClass = "NON_WORKING"
	Break      CellClass = "BREAK"
	Available  CellClass = "AVAILABLE"
	Occupied   CellClass = "OCCUPIED"
)

// Cell классифицированная ячейка (день, слот)
type Cell struct {
	Date         time.Time
	Slot         types.TimeString
	Class        CellClass
	Appointments []*domain.Appointment // Только для OCCUPIED
}

// CanCreate новую запись можно создать только в свободной ячейке
func (c Cell) CanCreate() bool {
	return c.Class == Available
}

// Classifier определяет доступность ячеек по графику и индексу занятости
type Classifier struct {
	hours HoursResolver
	index *Index
}

// NewClassifier создает классификатор
func NewClassifier(hours HoursResolver, index *Index) *Classifier {
	return &Classifier{hours: hours, index: index}
}

// Classify классифицирует ячейку. Порядок проверок:
// 1. нерабочий день или слот вне рабочего окна -> NON_WORKING
// 2. слот в [lunchStart, lunchEnd) -> BREAK
// 3. в ячейке есть записи -> OCCUPIED
// 4. иначе -> AVAILABLE
//
// Запись в нерабочий день не меняет класс ячейки
func (c *Classifier) Classify(staffID int64, date time.Time, slot types.TimeString) Cell {
	cell := Cell{Date: date, Slot: slot}

	hours := c.hours.Resolve(staffID, date.Weekday())
	if !hours.IsWorking || slot.IsBefore(hours.Start) || !slot.IsBefore(hours.End) {
		cell.Class = NonWorking
		return cell
	}

	if hours.InLunch(slot) {
		cell.Class = Break
		return cell
	}

	if appointments := c.index.Lookup(date, slot); len(appointments) > 0 {
		cell.Class = Occupied
		cell.Appointments = appointments
		return cell
	}

	cell.Class = Available
	return cell
}

// Hours рабочее окно сотрудника на дату
func (c *Classifier) Hours(staffID int64, date time.Time) domain.WorkingHours {
	return c.hours.Resolve(staffID, date.Weekday())
}

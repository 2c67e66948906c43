package domain

import "time"

// StaffPosition должность сотрудника
type StaffPosition string

const (
	PositionOwner   StaffPosition = "owner"
	PositionManager StaffPosition = "manager"
	PositionSenior  StaffPosition = "senior"
	PositionJunior  StaffPosition = "junior"
	PositionIntern  StaffPosition = "intern"
)

// Rank старшинство должности: owner > manager > senior > junior > intern
// Для неизвестной должности возвращает 0
func (p StaffPosition) Rank() int {
	switch p {
	case PositionOwner:
		return 5
	case PositionManager:
		return 4
	case PositionSenior:
		return 3
	case PositionJunior:
		return 2
	case PositionIntern:
		return 1
	default:
		return 0
	}
}

// IsValid проверяет, что должность известна
func (p StaffPosition) IsValid() bool {
	return p.Rank() > 0
}

// StaffStatus статус занятости сотрудника
type StaffStatus string

const (
	StaffActive     StaffStatus = "active"
	StaffOnLeave    StaffStatus = "on_leave"
	StaffTerminated StaffStatus = "terminated"
)

// IsValid проверяет, что статус известен
func (s StaffStatus) IsValid() bool {
	return s == StaffActive || s == StaffOnLeave || s == StaffTerminated
}

// Staff сотрудник салона
type Staff struct {
	ID       int64
	Name     string
	Phone    string
	Role     string // Свободная категория, например "헤어 디자이너"
	Position StaffPosition
	Status   StaffStatus

	// Счетчики за месяц, хранятся как есть
	MonthlyCustomers int
	MonthlyServices  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTakeAppointments возвращает true, если сотрудник может принимать записи
func (s *Staff) CanTakeAppointments() bool {
	return s.Status == StaffActive
}

package staff

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	List(ctx context.Context, status *domain.StaffStatus) ([]*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) (*domain.Staff, error)
	Delete(ctx context.Context, id int64) error
}

// TemplateCache кэш графиков, сбрасывается при удалении сотрудника
type TemplateCache interface {
	Invalidate(ctx context.Context, staffID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

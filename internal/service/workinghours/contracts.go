package workinghours

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// TemplateRepository интерфейс хранилища индивидуальных графиков
type TemplateRepository interface {
	GetTemplate(ctx context.Context, staffID int64) (domain.WeeklyTemplate, error)
	ReplaceTemplate(ctx context.Context, staffID int64, tpl domain.WeeklyTemplate) error
	DeleteTemplate(ctx context.Context, staffID int64) error
}

// StaffRepository нужен только для проверки существования сотрудника
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// TemplateCache кэш индивидуальных графиков
type TemplateCache interface {
	Get(ctx context.Context, staffID int64) (domain.WeeklyTemplate, error)
	Set(ctx context.Context, staffID int64, tpl domain.WeeklyTemplate) error
	Invalidate(ctx context.Context, staffID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

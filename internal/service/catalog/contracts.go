package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// CatalogRepository интерфейс репозитория услуг и категорий
type CatalogRepository interface {
	CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context, filter catalogRepo.ServiceFilter) ([]*domain.Service, error)
	UpdateService(ctx context.Context, s *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// AppointmentRepository источник записей для сортировки услуг по популярности
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

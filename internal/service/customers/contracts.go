package customers

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
// Реализации: PostgreSQL (storage/customer) и удаленный API (integrations/salonapi)
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, query string) ([]*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package adjust_prices

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	ListServices(ctx context.Context, filter catalogRepo.ServiceFilter) ([]*domain.Service, error)
	UpdateServicePrice(ctx context.Context, id int64, price int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package customers

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customersService "github.com/m04kA/SMC-SalonService/internal/service/customers"
)

type CustomerService interface {
	List(ctx context.Context, query string) ([]*domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, in customersService.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, in customersService.CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64, confirm bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package services

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

type CatalogService interface {
	ListServices(ctx context.Context, sortKey string) ([]*domain.Service, error)
	CreateService(ctx context.Context, in catalog.ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id int64, in catalog.ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id int64, confirm bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

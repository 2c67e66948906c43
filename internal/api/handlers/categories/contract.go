package categories

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, in catalog.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in catalog.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64, confirm bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

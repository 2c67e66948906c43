package staff

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	staffService "github.com/m04kA/SMC-SalonService/internal/service/staff"
)

type StaffService interface {
	List(ctx context.Context, status *string) ([]*domain.Staff, error)
	Get(ctx context.Context, id int64) (*domain.Staff, error)
	Create(ctx context.Context, in staffService.StaffInput) (*domain.Staff, error)
	Update(ctx context.Context, id int64, in staffService.StaffInput) (*domain.Staff, error)
	Delete(ctx context.Context, id int64, confirm bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

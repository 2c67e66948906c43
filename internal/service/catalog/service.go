package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// popularityWindowDays период, за который считается популярность услуг
const popularityWindowDays = 90

// Service сервис каталога услуг и категорий
type Service struct {
	repo         CatalogRepository
	appointments AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, appointments AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListServices возвращает все услуги, отсортированные по ключу
// Для popularity считаются записи за последние 90 дней
func (s *Service) ListServices(ctx context.Context, sortKey string) ([]*domain.Service, error) {
	key, err := calendar.ParseSortKey(sortKey)
	if err != nil {
		s.logger.Warn("ListServices: invalid sort=%s", sortKey)
		return nil, domain.ValidationErrors{"sort": "неизвестный ключ сортировки"}
	}

	services, err := s.repo.ListServices(ctx, catalogRepo.ServiceFilter{})
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	var usage map[int64]int
	if key == calendar.SortPopularity {
		usage, err = s.usage(ctx)
		if err != nil {
			return nil, err
		}
	}

	return calendar.SortServices(services, key, usage), nil
}

func (s *Service) usage(ctx context.Context) (map[int64]int, error) {
	end := calendar.DateOnly(s.timeProvider.Now())
	start := end.AddDate(0, 0, -popularityWindowDays)

	appointments, err := s.appointments.List(ctx, domain.AppointmentFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		s.logger.Error("ListServices: failed to load appointments for popularity: %v", err)
		return nil, fmt.Errorf("%w: ListServices - appointments error: %v", ErrInternal, err)
	}

	return calendar.ServiceUsage(appointments), nil
}

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, in ServiceInput) (*domain.Service, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateService(ctx, in.toDomain())
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service created id=%d, price=%d", created.ID, created.BasePrice)
	return created, nil
}

// UpdateService обновляет услугу
func (s *Service) UpdateService(ctx context.Context, id int64, in ServiceInput) (*domain.Service, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("UpdateService: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	service := in.toDomain()
	service.ID = id

	updated, err := s.repo.UpdateService(ctx, service)
	if err != nil {
		return nil, s.mapServiceErr("UpdateService", id, err)
	}

	s.logger.Info("UpdateService: service id=%d updated", id)
	return updated, nil
}

// DeleteService удаляет услугу, требует подтверждения
// Записи хранят копию услуги, поэтому история не меняется
func (s *Service) DeleteService(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		s.logger.Warn("DeleteService: confirmation required for service id=%d", id)
		return domain.ErrConfirmationRequired
	}

	if err := s.repo.DeleteService(ctx, id); err != nil {
		return s.mapServiceErr("DeleteService", id, err)
	}

	s.logger.Info("DeleteService: service id=%d deleted", id)
	return nil
}

// ListCategories возвращает категории в порядке отображения
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}
	return categories, nil
}

// CreateCategory создает категорию
func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("CreateCategory: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.CreateCategory(ctx, in.toDomain())
	if err != nil {
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: category created id=%d", created.ID)
	return created, nil
}

// UpdateCategory обновляет категорию
func (s *Service) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("UpdateCategory: validation failed for category id=%d: %v", id, err)
		return nil, err
	}

	category := in.toDomain()
	category.ID = id

	updated, err := s.repo.UpdateCategory(ctx, category)
	if err != nil {
		return nil, s.mapCategoryErr("UpdateCategory", id, err)
	}

	s.logger.Info("UpdateCategory: category id=%d updated", id)
	return updated, nil
}

// DeleteCategory удаляет категорию, требует подтверждения
func (s *Service) DeleteCategory(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		s.logger.Warn("DeleteCategory: confirmation required for category id=%d", id)
		return domain.ErrConfirmationRequired
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return s.mapCategoryErr("DeleteCategory", id, err)
	}

	s.logger.Info("DeleteCategory: category id=%d deleted", id)
	return nil
}

func (s *Service) mapServiceErr(op string, id int64, err error) error {
	if errors.Is(err, catalogRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) mapCategoryErr(op string, id int64, err error) error {
	if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
		s.logger.Warn("%s: category id=%d not found", op, id)
		return ErrCategoryNotFound
	}
	s.logger.Error("%s: repository error for category id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

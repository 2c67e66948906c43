package staff

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
)

// Service сервис для работы с сотрудниками
type Service struct {
	repo   StaffRepository
	cache  TemplateCache
	logger Logger
}

// NewService создает новый экземпляр сервиса сотрудников
// cache может быть nil, если Redis отключен
func NewService(repo StaffRepository, cache TemplateCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает сотрудников, старшие должности первыми
// status - необязательный фильтр
func (s *Service) List(ctx context.Context, status *string) ([]*domain.Staff, error) {
	var domainStatus *domain.StaffStatus
	if status != nil && *status != "" {
		st := domain.StaffStatus(*status)
		if !st.IsValid() {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, domain.ValidationErrors{"status": "неизвестный статус"}
		}
		domainStatus = &st
	}

	staff, err := s.repo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(staff, func(i, j int) bool {
		return staff[i].Position.Rank() > staff[j].Position.Rank()
	})

	return staff, nil
}

// Get получает сотрудника по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Staff, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr("Get", id, err)
	}
	return member, nil
}

// Create создает сотрудника
func (s *Service) Create(ctx context.Context, in StaffInput) (*domain.Staff, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, in.toDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: staff created id=%d, position=%s", created.ID, created.Position)
	return created, nil
}

// Update обновляет сотрудника
func (s *Service) Update(ctx context.Context, id int64, in StaffInput) (*domain.Staff, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for staff id=%d: %v", id, err)
		return nil, err
	}

	member := in.toDomain()
	member.ID = id

	updated, err := s.repo.Update(ctx, member)
	if err != nil {
		return nil, s.mapRepoErr("Update", id, err)
	}

	s.logger.Info("Update: staff id=%d updated", id)
	return updated, nil
}

// Delete удаляет сотрудника вместе с его графиком, требует подтверждения
func (s *Service) Delete(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		s.logger.Warn("Delete: confirmation required for staff id=%d", id)
		return domain.ErrConfirmationRequired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoErr("Delete", id, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			s.logger.Warn("Delete: failed to invalidate template cache for staff id=%d: %v", id, err)
		}
	}

	s.logger.Info("Delete: staff id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoErr(op string, id int64, err error) error {
	if errors.Is(err, staffRepo.ErrStaffNotFound) {
		s.logger.Warn("%s: staff id=%d not found", op, id)
		return ErrStaffNotFound
	}
	s.logger.Error("%s: repository error for staff id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

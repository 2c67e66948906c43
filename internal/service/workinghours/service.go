package workinghours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/cache/schedule"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
)

// Service сервис графиков работы сотрудников
type Service struct {
	templates TemplateRepository
	staff     StaffRepository
	cache     TemplateCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса
// cache может быть nil, если Redis отключен
func NewService(
	templates TemplateRepository,
	staff StaffRepository,
	cache TemplateCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		templates: templates,
		staff:     staff,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// GetTemplate возвращает график сотрудника
func (s *Service) GetTemplate(ctx context.Context, staffID int64) (*Template, error) {
	if err := s.ensureStaff(ctx, "GetTemplate", staffID); err != nil {
		return nil, err
	}

	week, custom, err := s.load(ctx, staffID)
	if err != nil {
		return nil, err
	}

	return &Template{StaffID: staffID, Week: week, Custom: custom}, nil
}

// SetTemplate перезаписывает график сотрудника, требует подтверждения
func (s *Service) SetTemplate(ctx context.Context, staffID int64, week domain.WeeklyTemplate, confirm bool) (*Template, error) {
	if !confirm {
		s.logger.Warn("SetTemplate: confirmation required for staff id=%d", staffID)
		return nil, domain.ErrConfirmationRequired
	}

	// 1. Валидация всех дней
	if err := validateTemplate(week); err != nil {
		s.logger.Warn("SetTemplate: validation failed for staff id=%d: %v", staffID, err)
		return nil, err
	}

	// 2. Проверяем сотрудника
	if err := s.ensureStaff(ctx, "SetTemplate", staffID); err != nil {
		return nil, err
	}

	// 3. Удаление и вставка строк в одной транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.templates.ReplaceTemplate(txCtx, staffID, week)
	})
	if err != nil {
		s.logger.Error("SetTemplate: failed to replace template for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: SetTemplate - repository error: %v", ErrInternal, err)
	}

	// 4. Сбрасываем кэш
	s.invalidate(ctx, "SetTemplate", staffID)

	s.logger.Info("SetTemplate: template replaced for staff id=%d", staffID)
	return &Template{StaffID: staffID, Week: week, Custom: true}, nil
}

// Reset удаляет индивидуальный график, требует подтверждения
func (s *Service) Reset(ctx context.Context, staffID int64, confirm bool) (*Template, error) {
	if !confirm {
		s.logger.Warn("Reset: confirmation required for staff id=%d", staffID)
		return nil, domain.ErrConfirmationRequired
	}

	if err := s.ensureStaff(ctx, "Reset", staffID); err != nil {
		return nil, err
	}

	if err := s.templates.DeleteTemplate(ctx, staffID); err != nil {
		s.logger.Error("Reset: failed to delete template for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "Reset", staffID)

	s.logger.Info("Reset: template reset to default for staff id=%d", staffID)
	return &Template{StaffID: staffID, Week: domain.DefaultWeeklyTemplate(), Custom: false}, nil
}

// Resolver собирает резолвер рабочих окон для перечисленных сотрудников
// Сотрудники без индивидуального графика получают общий
func (s *Service) Resolver(ctx context.Context, staffIDs ...int64) (calendar.HoursResolver, error) {
	overrides := make(map[int64]domain.WeeklyTemplate, len(staffIDs))
	for _, id := range staffIDs {
		week, custom, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		if custom {
			overrides[id] = week
		}
	}
	return calendar.NewTemplateResolver(overrides), nil
}

// load кэш -> PostgreSQL -> общий график
func (s *Service) load(ctx context.Context, staffID int64) (domain.WeeklyTemplate, bool, error) {
	if s.cache != nil {
		week, err := s.cache.Get(ctx, staffID)
		if err == nil {
			return week, true, nil
		}
		if !errors.Is(err, schedule.ErrCacheMiss) {
			s.logger.Warn("load: cache read failed for staff id=%d, falling back to database: %v", staffID, err)
		}
	}

	week, err := s.templates.GetTemplate(ctx, staffID)
	if errors.Is(err, staffRepo.ErrTemplateNotFound) {
		return domain.DefaultWeeklyTemplate(), false, nil
	}
	if err != nil {
		s.logger.Error("load: failed to get template for staff id=%d: %v", staffID, err)
		return domain.WeeklyTemplate{}, false, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, staffID, week); err != nil {
			s.logger.Warn("load: cache write failed for staff id=%d: %v", staffID, err)
		}
	}

	return week, true, nil
}

func (s *Service) ensureStaff(ctx context.Context, op string, staffID int64) error {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("%s: staff id=%d not found", op, staffID)
			return ErrStaffNotFound
		}
		s.logger.Error("%s: failed to get staff id=%d: %v", op, staffID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, op string, staffID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, staffID); err != nil {
		s.logger.Warn("%s: failed to invalidate cache for staff id=%d: %v", op, staffID, err)
	}
}

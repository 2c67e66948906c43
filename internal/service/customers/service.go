package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// Service сервис для работы с клиентами
type Service struct {
	repo   CustomerRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает клиентов, query - поиск по имени или телефону
func (s *Service) List(ctx context.Context, query string) ([]*domain.Customer, error) {
	customers, err := s.repo.List(ctx, query)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return customers, nil
}

// Get получает клиента по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr("Get", id, err)
	}
	return customer, nil
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, in CustomerInput) (*domain.Customer, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, in.toDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: customer created id=%d", created.ID)
	return created, nil
}

// Update обновляет клиента
func (s *Service) Update(ctx context.Context, id int64, in CustomerInput) (*domain.Customer, error) {
	if err := in.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for customer id=%d: %v", id, err)
		return nil, err
	}

	customer := in.toDomain()
	customer.ID = id

	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		return nil, s.mapRepoErr("Update", id, err)
	}

	s.logger.Info("Update: customer id=%d updated", id)
	return updated, nil
}

// Delete удаляет клиента, требует подтверждения
// Записи клиента остаются, имя и телефон в них денормализованы
func (s *Service) Delete(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		s.logger.Warn("Delete: confirmation required for customer id=%d", id)
		return domain.ErrConfirmationRequired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoErr("Delete", id, err)
	}

	s.logger.Info("Delete: customer id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoErr(op string, id int64, err error) error {
	if errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Warn("%s: customer id=%d not found", op, id)
		return ErrCustomerNotFound
	}
	s.logger.Error("%s: repository error for customer id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

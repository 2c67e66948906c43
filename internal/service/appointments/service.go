package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
)

// Service сервис для работы с отдельной записью
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr("GetByID", id, err)
	}

	return appointment, nil
}

// UpdateStatus меняет статус записи
// Переходы между статусами не ограничены: администратор может исправить любой статус
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, status)

	newStatus := domain.AppointmentStatus(status)
	if !newStatus.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", status, id)
		return domain.ValidationErrors{"status": "неизвестный статус"}
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return s.mapRepoErr("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return nil
}

// Delete удаляет запись, требует подтверждения
func (s *Service) Delete(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		s.logger.Warn("Delete: confirmation required for appointment id=%d", id)
		return domain.ErrConfirmationRequired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoErr("Delete", id, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

func (s *Service) mapRepoErr(op string, id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

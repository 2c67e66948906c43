package adjust_prices

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// UseCase use case для массового изменения цен услуг
type UseCase struct {
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(serviceRepo ServiceRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute применяет изменение цены ко всем выбранным услугам атомарно
// Если хотя бы одна услуга не найдена, ни одна цена не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdjustPrices: type=%s, direction=%s, value=%v, all=%t, services=%v",
		req.Type, req.Direction, req.Value, req.All, req.ServiceIDs)

	// 1. Валидация
	adjustment, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("AdjustPrices: validation failed: %v", err)
		return nil, err
	}

	filter := catalogRepo.ServiceFilter{ForUpdate: true}
	if req.All {
		filter.ActiveOnly = true
	} else {
		filter.IDs = req.ServiceIDs
	}

	resp := &Response{}

	// 2. Выборка с блокировкой и обновление в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		services, err := uc.serviceRepo.ListServices(txCtx, filter)
		if err != nil {
			uc.logger.Error("AdjustPrices: failed to list services: %v", err)
			return fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}

		if !req.All {
			if missing, ok := findMissing(req.ServiceIDs, services); !ok {
				uc.logger.Warn("AdjustPrices: service id=%d not found", missing)
				return fmt.Errorf("%w: id=%d", ErrServiceNotFound, missing)
			}
		}

		changes := make([]Change, 0, len(services))
		updated := 0
		for _, s := range services {
			after := adjustment.Apply(s.BasePrice)
			if after != s.BasePrice {
				if err := uc.serviceRepo.UpdateServicePrice(txCtx, s.ID, after); err != nil {
					uc.logger.Error("AdjustPrices: failed to update service id=%d: %v", s.ID, err)
					return fmt.Errorf("%w: failed to update service id=%d: %v", ErrInternal, s.ID, err)
				}
				updated++
			}
			changes = append(changes, Change{ServiceID: s.ID, Name: s.Name, Before: s.BasePrice, After: after})
		}

		resp.Changes = changes
		resp.Updated = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdjustPrices: updated %d of %d services", resp.Updated, len(resp.Changes))
	return resp, nil
}

func findMissing(ids []int64, services []*domain.Service) (int64, bool) {
	found := make(map[int64]struct{}, len(services))
	for _, s := range services {
		found[s.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return id, false
		}
	}
	return 0, true
}

package impl

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type orderService struct {
	orderRepo    repository.OrderRepository
	cateringRepo repository.CateringRepository
}

// NewOrderService creates a new order service instance.
func NewOrderService(orderRepo repository.OrderRepository, cateringRepo repository.CateringRepository) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    orderRepo,
		cateringRepo: cateringRepo,
	}
}

// ListOrders returns all standard-channel orders, newest first.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves a single order by its exposed identifier.
func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return order, nil
}

// ListCateringRequests returns all catering-channel requests, newest first.
func (s *orderService) ListCateringRequests(ctx context.Context) ([]*entity.CateringRequest, error) {
	requests, err := s.cateringRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list catering requests")
	}

	return requests, nil
}

package service

import (
	"context"
	"time"

	"vetcare-api/core/errors"
	"vetcare-api/core/logger"
	"vetcare-api/core/utils"
	"vetcare-api/modules/inventory/dto"
	"vetcare-api/modules/inventory/entity"
	"vetcare-api/modules/inventory/repository"
)

// Notifier alerts when an adjustment drops an item below its threshold.
type Notifier interface {
	LowStock(ctx context.Context, item *entity.Item)
}

type ItemServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateItemRequest) (*dto.ItemResponse, *errors.AppError)
	List(ctx context.Context) ([]dto.ItemResponse, *errors.AppError)
	ListLowStock(ctx context.Context) ([]dto.ItemResponse, *errors.AppError)
	AdjustQuantity(ctx context.Context, itemID string, delta int) (*dto.ItemResponse, *errors.AppError)
}

type itemService struct {
	repo     repository.ItemRepositoryInterface
	notifier Notifier
}

func NewItemService(repo repository.ItemRepositoryInterface, notifier Notifier) ItemServiceInterface {
	return &itemService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *itemService) Create(ctx context.Context, req *dto.CreateItemRequest) (*dto.ItemResponse, *errors.AppError) {
	if req.ItemName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Item name is required", nil)
	}
	if req.Quantity < 0 || req.Threshold < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Quantity and threshold must not be negative", nil)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate item id", err)
	}

	item := &entity.Item{
		ID:        id,
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		Threshold: req.Threshold,
		UpdatedAt: time.Now().UTC(),
	}
	s.repo.Insert(item)

	logger.Info("ItemService:Create:Success", "item_id", item.ID, "name", item.ItemName)
	return dto.ToItemResponse(item), nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, *errors.AppError) {
	return dto.ToItemResponses(s.repo.List()), nil
}

func (s *itemService) ListLowStock(ctx context.Context) ([]dto.ItemResponse, *errors.AppError) {
	return dto.ToItemResponses(s.repo.ListLowStock()), nil
}

// AdjustQuantity applies a signed delta. Stock never goes negative; an
// adjustment that would is rejected whole.
func (s *itemService) AdjustQuantity(ctx context.Context, itemID string, delta int) (*dto.ItemResponse, *errors.AppError) {
	item := s.repo.GetByID(itemID)
	if item == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Item not found", nil)
	}
	if item.Quantity+delta < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Adjustment would make stock negative", nil)
	}

	wasLow := item.LowStock()
	item.Quantity += delta
	item.UpdatedAt = time.Now().UTC()
	s.repo.Replace(item)

	if !wasLow && item.LowStock() {
		s.notifier.LowStock(ctx, item)
	}

	logger.Info("ItemService:AdjustQuantity:Success", "item_id", itemID, "delta", delta, "quantity", item.Quantity)
	return dto.ToItemResponse(item), nil
}

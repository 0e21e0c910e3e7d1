package service_test

import (
	"context"
	"testing"

	"vetcare-api/core/errors"
	"vetcare-api/modules/inventory/dto"
	"vetcare-api/modules/inventory/entity"
	"vetcare-api/modules/inventory/repository"
	"vetcare-api/modules/inventory/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStockNotifier struct {
	alerts []string
}

func (f *fakeStockNotifier) LowStock(ctx context.Context, item *entity.Item) {
	f.alerts = append(f.alerts, item.ID)
}

func newItemFixture() (service.ItemServiceInterface, *repository.ItemRepository, *fakeStockNotifier) {
	repo := repository.NewItemRepository()
	notifier := &fakeStockNotifier{}
	return service.NewItemService(repo, notifier), repo, notifier
}

func TestItemCreate(t *testing.T) {
	svc, _, _ := newItemFixture()

	resp, appErr := svc.Create(context.Background(), &dto.CreateItemRequest{
		ItemName: "Gauze rolls", Quantity: 10, Threshold: 4,
	})

	require.Nil(t, appErr)
	assert.False(t, resp.LowStock)

	_, appErr = svc.Create(context.Background(), &dto.CreateItemRequest{Quantity: 1})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestAdjustQuantity(t *testing.T) {
	svc, repo, notifier := newItemFixture()
	repo.Seed([]*entity.Item{
		{ID: "i1", ItemName: "Gloves", Quantity: 6, Threshold: 5},
	})

	t.Run("crossing the threshold alerts once", func(t *testing.T) {
		resp, appErr := svc.AdjustQuantity(context.Background(), "i1", -2)
		require.Nil(t, appErr)
		assert.Equal(t, 4, resp.Quantity)
		assert.True(t, resp.LowStock)
		assert.Equal(t, []string{"i1"}, notifier.alerts)

		// Already low, no second alert.
		_, appErr = svc.AdjustQuantity(context.Background(), "i1", -1)
		require.Nil(t, appErr)
		assert.Len(t, notifier.alerts, 1)
	})

	t.Run("stock cannot go negative", func(t *testing.T) {
		_, appErr := svc.AdjustQuantity(context.Background(), "i1", -100)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, appErr := svc.AdjustQuantity(context.Background(), "ghost", 1)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrNotFound, appErr.Code)
	})
}

func TestListLowStock(t *testing.T) {
	svc, repo, _ := newItemFixture()
	repo.Seed([]*entity.Item{
		{ID: "i1", ItemName: "Gloves", Quantity: 3, Threshold: 10},
		{ID: "i2", ItemName: "Gauze", Quantity: 20, Threshold: 8},
	})

	got, appErr := svc.ListLowStock(context.Background())
	require.Nil(t, appErr)
	require.Len(t, got, 1)
	assert.Equal(t, "i1", got[0].ID)
}

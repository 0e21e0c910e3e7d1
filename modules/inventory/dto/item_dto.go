package dto

import (
	"time"

	"vetcare-api/modules/inventory/entity"
)

type CreateItemRequest struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

// AdjustQuantityRequest changes stock by a signed delta.
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

type ItemResponse struct {
	ID        string    `json:"id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Threshold int       `json:"threshold"`
	LowStock  bool      `json:"low_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToItemResponse(i *entity.Item) *ItemResponse {
	return &ItemResponse{
		ID:        i.ID,
		ItemName:  i.ItemName,
		Quantity:  i.Quantity,
		Threshold: i.Threshold,
		LowStock:  i.LowStock(),
		UpdatedAt: i.UpdatedAt,
	}
}

func ToItemResponses(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, *ToItemResponse(i))
	}
	return out
}

package entity

import "time"

// Item is a stocked supply. Quantity below Threshold means low stock.
type Item struct {
	ID        string    `json:"id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Threshold int       `json:"threshold"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Item) LowStock() bool {
	return i.Quantity < i.Threshold
}

func (i *Item) Clone() *Item {
	cp := *i
	return &cp
}

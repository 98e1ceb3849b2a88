package models

import "time"

// CartItem is one line of a cart. A persisted line always has Quantity >= 1;
// reducing a line to zero or below removes it instead.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is the per-user cart document. One cart per user. TotalCost is a cached
// derivation of the line items against current catalog prices and is recomputed
// in full on every mutation, never patched incrementally.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	TotalCost float64    `json:"total_cost"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Find returns the index of the line item for productID, or -1.
func (c *Cart) Find(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

package domain

import "time"

// Sale is an immutable ledger entry: a quantity of one product sold at the
// total computed from the catalog price at the time of sale.
type Sale struct {
	ID         uint      `json:"id"`
	ProductID  uint      `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

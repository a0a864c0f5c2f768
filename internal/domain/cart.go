package domain

import "time"

type Cart struct {
	ID         int64      `json:"id"`
	CustomerID int64      `json:"customerId"`
	CreatedAt  time.Time  `json:"createdAt"`
	Items      []CartItem `json:"items,omitempty"`
}

// CartItem holds the reserved quantity of one product in a cart. The quantity
// has already been taken out of the product's stock.
type CartItem struct {
	CartID    int64     `json:"cartId"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

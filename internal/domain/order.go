package domain

import "time"

type Order struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	OrderDate  time.Time `json:"orderDate"`
	TotalCents int64     `json:"totalCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderItem struct {
	OrderID        int64 `json:"orderId"`
	ProductID      int64 `json:"productId"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unitPriceCents"`
}

// OrderHistoryEntry is one line of a customer's order history: order fields
// joined with the purchased product.
type OrderHistoryEntry struct {
	OrderID        int64     `json:"orderId"`
	OrderDate      time.Time `json:"orderDate"`
	TotalCents     int64     `json:"totalCents"`
	ProductName    string    `json:"productName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

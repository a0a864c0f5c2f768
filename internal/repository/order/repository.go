package order

import (
	"context"

	"departmental-store/internal/domain"
	"departmental-store/internal/pricing"
)

type Repository interface {
	// CreateFromCart converts the customer's cart into an order with line
	// items in one transaction and clears the cart items. Returns the new
	// order's id. On any failure nothing is written.
	CreateFromCart(ctx context.Context, customerID int64, pricer pricing.Pricer) (int64, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListItems(ctx context.Context) ([]domain.OrderItem, error)
	HistoryByCustomer(ctx context.Context, customerID int64) ([]domain.OrderHistoryEntry, error)
}

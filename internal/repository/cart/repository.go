package cart

import (
	"context"

	"departmental-store/internal/domain"
)

type Repository interface {
	// AddItem reserves stock and upserts the cart item in one transaction,
	// creating the customer's cart on first use. Returns the cart id.
	AddItem(ctx context.Context, customerID, productID int64, qty int) (int64, error)
	// RemoveItem deletes the cart item and releases its reserved stock in
	// one transaction.
	RemoveItem(ctx context.Context, customerID, productID int64) error
	List(ctx context.Context) ([]domain.Cart, error)
	ItemsByCustomer(ctx context.Context, customerID int64) ([]domain.CartItem, error)
}

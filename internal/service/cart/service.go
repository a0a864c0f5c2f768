package cart

import (
	"context"
	"fmt"

	"departmental-store/internal/domain"
)

type cartRepo interface {
	AddItem(ctx context.Context, customerID, productID int64, qty int) (int64, error)
	RemoveItem(ctx context.Context, customerID, productID int64) error
	List(ctx context.Context) ([]domain.Cart, error)
	ItemsByCustomer(ctx context.Context, customerID int64) ([]domain.CartItem, error)
}

// Service owns the per-customer cart lifecycle. Stock reservation semantics
// live in the repository transaction; the service validates input and
// propagates ledger failures unchanged.
type Service struct {
	repo cartRepo
}

func New(repo cartRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddItem(ctx context.Context, customerID, productID int64, qty int) (int64, error) {
	if customerID <= 0 {
		return 0, fmt.Errorf("customer id required: %w", domain.ErrInvalidArgument)
	}
	if productID <= 0 {
		return 0, fmt.Errorf("product id required: %w", domain.ErrInvalidArgument)
	}
	if qty <= 0 {
		return 0, fmt.Errorf("quantity must be positive: %w", domain.ErrInvalidArgument)
	}
	return s.repo.AddItem(ctx, customerID, productID, qty)
}

func (s *Service) RemoveItem(ctx context.Context, customerID, productID int64) error {
	if customerID <= 0 {
		return fmt.Errorf("customer id required: %w", domain.ErrInvalidArgument)
	}
	if productID <= 0 {
		return fmt.Errorf("product id required: %w", domain.ErrInvalidArgument)
	}
	return s.repo.RemoveItem(ctx, customerID, productID)
}

func (s *Service) List(ctx context.Context) ([]domain.Cart, error) {
	return s.repo.List(ctx)
}

// Items returns the cart items for a customer. A customer without a cart gets
// an empty list, not an error.
func (s *Service) Items(ctx context.Context, customerID int64) ([]domain.CartItem, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("customer id required: %w", domain.ErrInvalidArgument)
	}
	return s.repo.ItemsByCustomer(ctx, customerID)
}

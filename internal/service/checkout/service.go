package checkout

import (
	"context"
	"fmt"

	"departmental-store/internal/domain"
	"departmental-store/internal/pricing"
)

type orderRepo interface {
	CreateFromCart(ctx context.Context, customerID int64, pricer pricing.Pricer) (int64, error)
}

type customerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// Service converts a customer's cart into an order. The conversion itself is
// a single repository transaction; the service holds the pricing collaborator
// and validates input.
type Service struct {
	repo      orderRepo
	customers customerReader
	pricer    pricing.Pricer
}

func New(repo orderRepo, customers customerReader, pricer pricing.Pricer) *Service {
	return &Service{repo: repo, customers: customers, pricer: pricer}
}

// Checkout places an order from the customer's cart and returns the order id.
// It fails with domain.ErrNotFound for an unknown customer, with
// domain.ErrCartNotFound when the customer has no cart and with
// domain.ErrEmptyCart when the cart has no items.
func (s *Service) Checkout(ctx context.Context, customerID int64) (int64, error) {
	if customerID <= 0 {
		return 0, fmt.Errorf("customer id required: %w", domain.ErrInvalidArgument)
	}
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return 0, err
	}
	return s.repo.CreateFromCart(ctx, customerID, s.pricer)
}

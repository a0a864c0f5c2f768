package inventory

import (
	"context"
	"fmt"

	"departmental-store/internal/domain"
)

type ledger interface {
	Restock(ctx context.Context, productID int64, qty int) error
}

// Service fronts manual stock adjustments.
type Service struct {
	ledger ledger
}

func New(l ledger) *Service {
	return &Service{ledger: l}
}

func (s *Service) Restock(ctx context.Context, productID int64, qty int) error {
	if productID <= 0 {
		return fmt.Errorf("product id required: %w", domain.ErrInvalidArgument)
	}
	return s.ledger.Restock(ctx, productID, qty)
}

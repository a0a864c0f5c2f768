// Package pricing supplies unit prices at checkout time. The catalog carries
// no price data, so the default implementation quotes a fixed amount; a real
// pricing source can be swapped in behind the same interface.
package pricing

import "context"

type Pricer interface {
	// PriceFor returns the unit price for a product in cents.
	PriceFor(ctx context.Context, productID int64) (int64, error)
}

// Fixed quotes the same price for every product.
type Fixed struct {
	Cents int64
}

func (f Fixed) PriceFor(_ context.Context, _ int64) (int64, error) {
	return f.Cents, nil
}

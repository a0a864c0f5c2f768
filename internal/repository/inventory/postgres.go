// Package inventory enforces the non-negative stock invariant for products.
//
// Reserve, Release and Restock are implemented as single conditional UPDATEs
// so that concurrent callers against the same product row are serialized by
// the database; there is no read-then-write window to race through.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"departmental-store/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgx needed by the ledger operations. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so callers running their own transaction can apply
// ledger operations inside it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reserve atomically decrements a product's stock by qty. It fails with
// domain.ErrNotFound when the product does not exist and with
// domain.ErrInsufficientStock when qty exceeds the current stock. On failure
// the stock is untouched.
func Reserve(ctx context.Context, db DB, productID int64, qty int) error {
	tag, err := db.Exec(ctx, `
UPDATE products
SET quantity_in_stock = quantity_in_stock - $1
WHERE id = $2 AND quantity_in_stock >= $1
`, qty, productID)
	if err != nil {
		return fmt.Errorf("reserve stock for product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		stock, err := currentStock(ctx, db, productID)
		if err != nil {
			return err
		}
		return fmt.Errorf("product %d has %d left: %w", productID, stock, domain.ErrInsufficientStock)
	}
	return nil
}

// Release returns qty units to a product's stock, used when a reserved cart
// item is removed. It fails with domain.ErrNotFound for an unknown product.
func Release(ctx context.Context, db DB, productID int64, qty int) error {
	tag, err := db.Exec(ctx, `
UPDATE products
SET quantity_in_stock = quantity_in_stock + $1
WHERE id = $2
`, qty, productID)
	if err != nil {
		return fmt.Errorf("release stock for product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}
	return nil
}

// Restock increments a product's stock. Non-positive quantities and unknown
// products fail with domain.ErrInvalidArgument.
func Restock(ctx context.Context, db DB, productID int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("restock quantity must be positive: %w", domain.ErrInvalidArgument)
	}
	tag, err := db.Exec(ctx, `
UPDATE products
SET quantity_in_stock = quantity_in_stock + $1
WHERE id = $2
`, qty, productID)
	if err != nil {
		return fmt.Errorf("restock product %d: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("unknown product %d: %w", productID, domain.ErrInvalidArgument)
	}
	return nil
}

func currentStock(ctx context.Context, db DB, productID int64) (int, error) {
	var stock int
	err := db.QueryRow(ctx, `SELECT quantity_in_stock FROM products WHERE id = $1`, productID).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("read stock for product %d: %w", productID, err)
	}
	return stock, nil
}

// Ledger fronts the ledger operations with a fixed pool for callers outside a
// transaction, such as the restock endpoint.
type Ledger struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewLedger(pool *pgxpool.Pool, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Ledger{pool: pool, logger: logger}
}

func (l *Ledger) Reserve(ctx context.Context, productID int64, qty int) error {
	return Reserve(ctx, l.pool, productID, qty)
}

func (l *Ledger) Release(ctx context.Context, productID int64, qty int) error {
	return Release(ctx, l.pool, productID, qty)
}

func (l *Ledger) Restock(ctx context.Context, productID int64, qty int) error {
	if err := Restock(ctx, l.pool, productID, qty); err != nil {
		return err
	}
	l.logger.Printf("inventory: restocked product=%d qty=%d", productID, qty)
	return nil
}

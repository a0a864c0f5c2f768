package cart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"departmental-store/internal/domain"
	"departmental-store/internal/repository/inventory"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) AddItem(ctx context.Context, customerID, productID int64, qty int) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Reservation first: a failed upsert afterwards rolls the decrement back
	// with the rest of the transaction.
	if err := inventory.Reserve(ctx, tx, productID, qty); err != nil {
		return 0, err
	}

	// Lookup-or-create without a read-then-insert window. The no-op update on
	// conflict makes RETURNING yield the existing row's id.
	var cartID int64
	err = tx.QueryRow(ctx, `
INSERT INTO shopping_carts (customer_id)
VALUES ($1)
ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
RETURNING id
`, customerID).Scan(&cartID)
	if err != nil {
		return 0, fmt.Errorf("ensure cart for customer %d: %w", customerID, err)
	}

	if _, err := tx.Exec(ctx, `
INSERT INTO shopping_cart_items (cart_id, product_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = shopping_cart_items.quantity + EXCLUDED.quantity
`, cartID, productID, qty); err != nil {
		return 0, fmt.Errorf("upsert cart item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	r.logger.Printf("cart repo: added customer=%d product=%d qty=%d cart=%d", customerID, productID, qty, cartID)
	return cartID, nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, customerID, productID int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var cartID int64
	err = tx.QueryRow(ctx, `SELECT id FROM shopping_carts WHERE customer_id = $1`, customerID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("cart for customer %d: %w", customerID, domain.ErrNotFound)
		}
		return err
	}

	var qty int
	err = tx.QueryRow(ctx, `
DELETE FROM shopping_cart_items
WHERE cart_id = $1 AND product_id = $2
RETURNING quantity
`, cartID, productID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("product %d in cart %d: %w", productID, cartID, domain.ErrNotFound)
		}
		return err
	}

	if err := inventory.Release(ctx, tx, productID, qty); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Printf("cart repo: removed customer=%d product=%d qty=%d", customerID, productID, qty)
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Cart, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, customer_id, created_at FROM shopping_carts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Cart
	for rows.Next() {
		var c domain.Cart
		if err := rows.Scan(&c.ID, &c.CustomerID, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) ItemsByCustomer(ctx context.Context, customerID int64) ([]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT i.cart_id, i.product_id, i.quantity, i.created_at
FROM shopping_cart_items i
JOIN shopping_carts c ON i.cart_id = c.id
WHERE c.customer_id = $1
ORDER BY i.product_id
`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

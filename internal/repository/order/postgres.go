package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"departmental-store/internal/domain"
	"departmental-store/internal/pricing"

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

func (r *postgresRepo) CreateFromCart(ctx context.Context, customerID int64, pricer pricing.Pricer) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var cartID int64
	err = tx.QueryRow(ctx, `SELECT id FROM shopping_carts WHERE customer_id = $1`, customerID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("customer %d: %w", customerID, domain.ErrCartNotFound)
		}
		return 0, err
	}

	// Lock the item rows so two checkouts of the same cart cannot both copy
	// them; the loser sees an already emptied cart.
	items, err := lockCartItems(ctx, tx, cartID)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, fmt.Errorf("cart %d: %w", cartID, domain.ErrEmptyCart)
	}

	var orderID int64
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, order_date, total_cents)
VALUES ($1, CURRENT_DATE, 0)
RETURNING id
`, customerID).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	var total int64
	for _, item := range items {
		price, err := pricer.PriceFor(ctx, item.ProductID)
		if err != nil {
			return 0, fmt.Errorf("price product %d: %w", item.ProductID, err)
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4)
`, orderID, item.ProductID, item.Quantity, price); err != nil {
			return 0, fmt.Errorf("insert order item for product %d: %w", item.ProductID, err)
		}
		total += price * int64(item.Quantity)
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET total_cents = $1 WHERE id = $2`, total, orderID); err != nil {
		return 0, fmt.Errorf("update order total: %w", err)
	}

	// The cart itself stays for reuse; only its items are consumed.
	if _, err := tx.Exec(ctx, `DELETE FROM shopping_cart_items WHERE cart_id = $1`, cartID); err != nil {
		return 0, fmt.Errorf("clear cart %d: %w", cartID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	r.logger.Printf("order repo: checkout customer=%d order=%d items=%d total_cents=%d", customerID, orderID, len(items), total)
	return orderID, nil
}

func lockCartItems(ctx context.Context, tx pgx.Tx, cartID int64) ([]domain.CartItem, error) {
	rows, err := tx.Query(ctx, `
SELECT cart_id, product_id, quantity, created_at
FROM shopping_cart_items
WHERE cart_id = $1
ORDER BY product_id
FOR UPDATE
`, cartID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, customer_id, order_date, total_cents, created_at
FROM orders
ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.OrderDate, &o.TotalCents, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *postgresRepo) ListItems(ctx context.Context) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT order_id, product_id, quantity, unit_price_cents
FROM order_items
ORDER BY order_id, product_id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *postgresRepo) HistoryByCustomer(ctx context.Context, customerID int64) ([]domain.OrderHistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT o.id, o.order_date, o.total_cents, p.name, i.quantity, i.unit_price_cents
FROM orders o
JOIN order_items i ON o.id = i.order_id
JOIN products p ON i.product_id = p.id
WHERE o.customer_id = $1
ORDER BY o.order_date DESC, o.id DESC
`, customerID)
	if err != nil {
		r.logger.Printf("order repo: history customer=%d error=%v", customerID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrderHistoryEntry
	for rows.Next() {
		var e domain.OrderHistoryEntry
		if err := rows.Scan(&e.OrderID, &e.OrderDate, &e.TotalCents, &e.ProductName, &e.Quantity, &e.UnitPriceCents); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

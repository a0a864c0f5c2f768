package inventory

import (
	"context"
	"errors"
	"os"
	"testing"

	"departmental-store/internal/domain"
	"departmental-store/internal/migrate"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestReserveAndRelease(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	prepare(ctx, t, pool)

	productID := insertProduct(ctx, t, pool, "Ledger Widget", 10)

	if err := Reserve(ctx, pool, productID, 4); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if got := stock(ctx, t, pool, productID); got != 6 {
		t.Fatalf("stock after reserve = %d, want 6", got)
	}

	if err := Release(ctx, pool, productID, 4); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if got := stock(ctx, t, pool, productID); got != 10 {
		t.Fatalf("stock after release = %d, want 10", got)
	}
}

func TestReserveInsufficientStock(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	prepare(ctx, t, pool)

	productID := insertProduct(ctx, t, pool, "Scarce Widget", 3)

	err := Reserve(ctx, pool, productID, 5)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if got := stock(ctx, t, pool, productID); got != 3 {
		t.Fatalf("stock changed on failed reserve: %d", got)
	}
}

func TestReserveUnknownProduct(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	prepare(ctx, t, pool)

	if err := Reserve(ctx, pool, 99999, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := Release(ctx, pool, 99999, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRestockValidation(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	prepare(ctx, t, pool)

	productID := insertProduct(ctx, t, pool, "Restock Widget", 5)

	for _, qty := range []int{0, -5} {
		if err := Restock(ctx, pool, productID, qty); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("qty %d: expected invalid argument, got %v", qty, err)
		}
	}
	if got := stock(ctx, t, pool, productID); got != 5 {
		t.Fatalf("stock changed on invalid restock: %d", got)
	}

	if err := Restock(ctx, pool, 99999, 5); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("unknown product: expected invalid argument, got %v", err)
	}

	if err := Restock(ctx, pool, productID, 7); err != nil {
		t.Fatalf("Restock: %v", err)
	}
	if got := stock(ctx, t, pool, productID); got != 12 {
		t.Fatalf("stock after restock = %d, want 12", got)
	}
}

func TestConcurrentReserveNeverOverdraws(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()
	prepare(ctx, t, pool)

	const (
		initialStock = 10
		callers      = 8
		perCall      = 3
	)
	productID := insertProduct(ctx, t, pool, "Contended Widget", initialStock)

	errCh := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			errCh <- Reserve(ctx, pool, productID, perCall)
		}()
	}

	succeeded := 0
	for i := 0; i < callers; i++ {
		err := <-errCh
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientStock):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if want := initialStock / perCall; succeeded != want {
		t.Fatalf("succeeded = %d, want %d", succeeded, want)
	}
	if got := stock(ctx, t, pool, productID); got != initialStock-succeeded*perCall {
		t.Fatalf("final stock = %d, want %d", got, initialStock-succeeded*perCall)
	}
	if got := stock(ctx, t, pool, productID); got < 0 {
		t.Fatalf("stock went negative: %d", got)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func prepare(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, shopping_cart_items, shopping_carts, customers, products, departments RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func insertProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, name string, stock int) int64 {
	t.Helper()
	var deptID int64
	err := pool.QueryRow(ctx, `
INSERT INTO departments (name) VALUES ('Test Dept')
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`).Scan(&deptID)
	if err != nil {
		t.Fatalf("insert department: %v", err)
	}

	var id int64
	err = pool.QueryRow(ctx, `
INSERT INTO products (name, department_id, category, brand, quantity_in_stock)
VALUES ($1, $2, 'Test', 'Test', $3)
RETURNING id
`, name, deptID, stock).Scan(&id)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}

func stock(ctx context.Context, t *testing.T, pool *pgxpool.Pool, productID int64) int {
	t.Helper()
	var s int
	if err := pool.QueryRow(ctx, `SELECT quantity_in_stock FROM products WHERE id = $1`, productID).Scan(&s); err != nil {
		t.Fatalf("read stock: %v", err)
	}
	return s
}

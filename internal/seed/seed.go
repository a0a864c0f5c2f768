package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name       string
	Department string
	Category   string
	Brand      string
	Stock      int
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	departments := []string{"Grocery", "Electronics", "Apparel"}
	deptIDs := make(map[string]int64, len(departments))
	for _, name := range departments {
		var id int64
		err := pool.QueryRow(ctx, `
INSERT INTO departments (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`, name).Scan(&id)
		if err != nil {
			return fmt.Errorf("ensure department %q: %w", name, err)
		}
		deptIDs[name] = id
	}

	products := []productSeed{
		{Name: "Basmati Rice 5kg", Department: "Grocery", Category: "Staples", Brand: "Daawat", Stock: 40},
		{Name: "Olive Oil 1L", Department: "Grocery", Category: "Oils", Brand: "Borges", Stock: 25},
		{Name: "Wireless Mouse", Department: "Electronics", Category: "Accessories", Brand: "Logitech", Stock: 15},
		{Name: "USB-C Charger", Department: "Electronics", Category: "Accessories", Brand: "Anker", Stock: 30},
		{Name: "Cotton T-Shirt", Department: "Apparel", Category: "Tops", Brand: "Uniqlo", Stock: 50},
	}
	for _, p := range products {
		if _, err := pool.Exec(ctx, `
INSERT INTO products (name, department_id, category, brand, quantity_in_stock)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`, p.Name, deptIDs[p.Department], p.Category, p.Brand, p.Stock); err != nil {
			return fmt.Errorf("ensure product %q: %w", p.Name, err)
		}
	}

	customers := []struct {
		First, Last, Email, Address, Phone string
	}{
		{"Asha", "Verma", "asha@example.com", "12 Market Road", "555-0100"},
		{"Rohan", "Iyer", "rohan@example.com", "88 Lake View", "555-0101"},
	}
	for _, c := range customers {
		if _, err := pool.Exec(ctx, `
INSERT INTO customers (first_name, last_name, email, address, phone_number)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO NOTHING
`, c.First, c.Last, c.Email, c.Address, c.Phone); err != nil {
			return fmt.Errorf("ensure customer %q: %w", c.Email, err)
		}
	}

	return nil
}

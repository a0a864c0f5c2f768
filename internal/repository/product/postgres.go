package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"departmental-store/internal/domain"

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

const productColumns = `id, name, department_id, category, brand, quantity_in_stock, expiry_date, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+productColumns+`
FROM products
ORDER BY id
`)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `
SELECT `+productColumns+`
FROM products
WHERE id = $1
`, id).Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Category, &p.Brand, &p.QuantityInStock, &p.ExpiryDate, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Search(ctx context.Context, filter SearchFilter) ([]domain.Product, error) {
	var (
		conds []string
		args  []any
	)
	if filter.DepartmentID != 0 {
		args = append(args, filter.DepartmentID)
		conds = append(conds, fmt.Sprintf("department_id = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Brand != "" {
		args = append(args, filter.Brand)
		conds = append(conds, fmt.Sprintf("brand = $%d", len(args)))
	}

	q := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: search error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) BrowseByDepartment(ctx context.Context, departmentName string) ([]domain.DepartmentProduct, error) {
	rows, err := r.pool.Query(ctx, `
SELECT p.id, p.name, p.department_id, p.category, p.brand, p.quantity_in_stock, p.expiry_date, p.created_at, d.name
FROM products p
JOIN departments d ON p.department_id = d.id
WHERE d.name = $1
ORDER BY p.id
`, departmentName)
	if err != nil {
		r.logger.Printf("product repo: browse department=%q error=%v", departmentName, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.DepartmentProduct
	for rows.Next() {
		var dp domain.DepartmentProduct
		if err := rows.Scan(&dp.ID, &dp.Name, &dp.DepartmentID, &dp.Category, &dp.Brand, &dp.QuantityInStock, &dp.ExpiryDate, &dp.CreatedAt, &dp.DepartmentName); err != nil {
			return nil, err
		}
		result = append(result, dp)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `
INSERT INTO products (name, department_id, category, brand, quantity_in_stock, expiry_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+productColumns+`
`, in.Name, in.DepartmentID, in.Category, in.Brand, in.Stock, in.ExpiryDate).Scan(
		&p.ID, &p.Name, &p.DepartmentID, &p.Category, &p.Brand, &p.QuantityInStock, &p.ExpiryDate, &p.CreatedAt,
	)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", in.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.DepartmentID, &p.Category, &p.Brand, &p.QuantityInStock, &p.ExpiryDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

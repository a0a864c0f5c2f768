package customer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, first_name, last_name, email, address, phone_number, created_at
FROM customers
ORDER BY id
`)
	if err != nil {
		r.logger.Printf("customer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Address, &c.PhoneNumber, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `
SELECT id, first_name, last_name, email, address, phone_number, created_at
FROM customers
WHERE id = $1
`, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Address, &c.PhoneNumber, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("customer %d: %w", id, domain.ErrNotFound)
		}
		r.logger.Printf("customer repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &c, nil
}

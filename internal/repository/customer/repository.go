package customer

import (
	"context"

	"departmental-store/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

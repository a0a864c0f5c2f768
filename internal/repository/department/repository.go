package department

import (
	"context"

	"departmental-store/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
}

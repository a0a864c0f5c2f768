package product

import (
	"context"
	"time"

	"departmental-store/internal/domain"
)

// SearchFilter narrows a product search. Empty fields are ignored; filled
// fields are AND-combined.
type SearchFilter struct {
	DepartmentID int64
	Category     string
	Brand        string
}

type CreateProductInput struct {
	Name         string
	DepartmentID int64
	Category     string
	Brand        string
	Stock        int
	ExpiryDate   *time.Time
}

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.Product, error)
	BrowseByDepartment(ctx context.Context, departmentName string) ([]domain.DepartmentProduct, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

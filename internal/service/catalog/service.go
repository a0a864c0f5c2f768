package catalog

import (
	"context"
	"fmt"
	"strings"

	"departmental-store/internal/domain"
	productrepo "departmental-store/internal/repository/product"
)

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Search(ctx context.Context, filter productrepo.SearchFilter) ([]domain.Product, error)
	BrowseByDepartment(ctx context.Context, departmentName string) ([]domain.DepartmentProduct, error)
	Create(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type departmentRepo interface {
	List(ctx context.Context) ([]domain.Department, error)
}

// Service is the read-mostly product catalog plus the admin create/delete
// operations.
type Service struct {
	products    productRepo
	departments departmentRepo
}

func New(products productRepo, departments departmentRepo) *Service {
	return &Service{products: products, departments: departments}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) SearchProducts(ctx context.Context, filter productrepo.SearchFilter) ([]domain.Product, error) {
	return s.products.Search(ctx, filter)
}

func (s *Service) BrowseByDepartment(ctx context.Context, name string) ([]domain.DepartmentProduct, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("department name required: %w", domain.ErrInvalidArgument)
	}
	return s.products.BrowseByDepartment(ctx, name)
}

func (s *Service) CreateProduct(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("product name required: %w", domain.ErrInvalidArgument)
	}
	if in.DepartmentID <= 0 {
		return nil, fmt.Errorf("department id required: %w", domain.ErrInvalidArgument)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative: %w", domain.ErrInvalidArgument)
	}
	return s.products.Create(ctx, in)
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("product id required: %w", domain.ErrInvalidArgument)
	}
	return s.products.Delete(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

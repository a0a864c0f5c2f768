package order

import (
	"context"
	"fmt"

	"departmental-store/internal/domain"
)

type orderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListItems(ctx context.Context) ([]domain.OrderItem, error)
	HistoryByCustomer(ctx context.Context, customerID int64) ([]domain.OrderHistoryEntry, error)
}

// Service exposes the order read side.
type Service struct {
	repo orderRepo
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListItems(ctx context.Context) ([]domain.OrderItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) History(ctx context.Context, customerID int64) ([]domain.OrderHistoryEntry, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("customer id required: %w", domain.ErrInvalidArgument)
	}
	return s.repo.HistoryByCustomer(ctx, customerID)
}

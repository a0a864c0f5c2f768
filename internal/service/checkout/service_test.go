package checkout

import (
	"context"
	"errors"
	"testing"

	"departmental-store/internal/domain"
	"departmental-store/internal/pricing"
)

type stubOrderRepo struct {
	orderID        int64
	err            error
	calls          int
	lastCustomerID int64
	lastPricer     pricing.Pricer
}

func (s *stubOrderRepo) CreateFromCart(_ context.Context, customerID int64, pricer pricing.Pricer) (int64, error) {
	s.calls++
	s.lastCustomerID = customerID
	s.lastPricer = pricer
	return s.orderID, s.err
}

type stubCustomerReader struct {
	err error
}

func (s *stubCustomerReader) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Customer{ID: id}, nil
}

func TestCheckoutValidation(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, &stubCustomerReader{}, pricing.Fixed{Cents: 10000})

	for _, id := range []int64{0, -1} {
		_, err := svc.Checkout(context.Background(), id)
		if !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("customer %d: expected invalid argument, got %v", id, err)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("repo called despite invalid input")
	}
}

func TestCheckoutUnknownCustomer(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, &stubCustomerReader{err: domain.ErrNotFound}, pricing.Fixed{Cents: 10000})

	_, err := svc.Checkout(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo called for unknown customer")
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	repo := &stubOrderRepo{orderID: 12}
	pricer := pricing.Fixed{Cents: 5000}
	svc := New(repo, &stubCustomerReader{}, pricer)

	orderID, err := svc.Checkout(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orderID != 12 {
		t.Fatalf("unexpected order id %d", orderID)
	}
	if repo.lastCustomerID != 4 {
		t.Fatalf("repo called with customer %d", repo.lastCustomerID)
	}
	if repo.lastPricer != pricer {
		t.Fatalf("pricer not passed through")
	}
}

func TestCheckoutPropagatesPreconditionErrors(t *testing.T) {
	for _, sentinel := range []error{domain.ErrCartNotFound, domain.ErrEmptyCart} {
		repo := &stubOrderRepo{err: sentinel}
		svc := New(repo, &stubCustomerReader{}, pricing.Fixed{Cents: 10000})
		_, err := svc.Checkout(context.Background(), 1)
		if !errors.Is(err, sentinel) {
			t.Fatalf("expected %v, got %v", sentinel, err)
		}
	}
}

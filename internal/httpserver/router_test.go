package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"departmental-store/internal/domain"
	productrepo "departmental-store/internal/repository/product"

	"github.com/gin-gonic/gin"
)

type stubCartService struct {
	cartID int64
	items  []domain.CartItem
	err    error

	lastCustomerID int64
	lastProductID  int64
	lastQty        int
}

func (s *stubCartService) AddItem(_ context.Context, customerID, productID int64, qty int) (int64, error) {
	s.lastCustomerID, s.lastProductID, s.lastQty = customerID, productID, qty
	return s.cartID, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, customerID, productID int64) error {
	s.lastCustomerID, s.lastProductID = customerID, productID
	return s.err
}

func (s *stubCartService) List(_ context.Context) ([]domain.Cart, error) {
	return nil, s.err
}

func (s *stubCartService) Items(_ context.Context, customerID int64) ([]domain.CartItem, error) {
	s.lastCustomerID = customerID
	return s.items, s.err
}

type stubCheckoutService struct {
	orderID        int64
	err            error
	lastCustomerID int64
}

func (s *stubCheckoutService) Checkout(_ context.Context, customerID int64) (int64, error) {
	s.lastCustomerID = customerID
	return s.orderID, s.err
}

type stubInventoryService struct {
	err           error
	lastProductID int64
	lastQty       int
}

func (s *stubInventoryService) Restock(_ context.Context, productID int64, qty int) error {
	s.lastProductID, s.lastQty = productID, qty
	return s.err
}

type stubCatalogService struct {
	product *domain.Product
	err     error
	filter  productrepo.SearchFilter
}

func (s *stubCatalogService) ListProducts(_ context.Context) ([]domain.Product, error) {
	return nil, s.err
}

func (s *stubCatalogService) GetProduct(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) SearchProducts(_ context.Context, filter productrepo.SearchFilter) ([]domain.Product, error) {
	s.filter = filter
	return nil, s.err
}

func (s *stubCatalogService) BrowseByDepartment(_ context.Context, _ string) ([]domain.DepartmentProduct, error) {
	return nil, s.err
}

func (s *stubCatalogService) CreateProduct(_ context.Context, _ productrepo.CreateProductInput) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) DeleteProduct(_ context.Context, _ int64) error {
	return s.err
}

func (s *stubCatalogService) ListDepartments(_ context.Context) ([]domain.Department, error) {
	return nil, s.err
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAddToCart_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCartService{cartID: 12}
	router := gin.New()
	router.GET("/cart/add", addToCartHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/cart/add?customerId=1&productId=5&qty=4", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Added to cart" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["cartId"] != float64(12) {
		t.Fatalf("unexpected cartId: %v", body["cartId"])
	}
	if svc.lastCustomerID != 1 || svc.lastProductID != 5 || svc.lastQty != 4 {
		t.Fatalf("service called with %d/%d/%d", svc.lastCustomerID, svc.lastProductID, svc.lastQty)
	}
}

func TestAddToCart_BadQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cart/add", addToCartHandler(&stubCartService{}))

	for _, url := range []string{
		"/cart/add?productId=5&qty=4",
		"/cart/add?customerId=1&qty=4",
		"/cart/add?customerId=1&productId=5",
		"/cart/add?customerId=0&productId=5&qty=4",
		"/cart/add?customerId=1&productId=5&qty=abc",
	} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", url, rec.Code)
		}
	}
}

func TestAddToCart_InsufficientStock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCartService{err: domain.ErrInsufficientStock}
	router := gin.New()
	router.GET("/cart/add", addToCartHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/cart/add?customerId=1&productId=5&qty=999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCartService{err: domain.ErrNotFound}
	router := gin.New()
	router.GET("/cart/add", addToCartHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/cart/add?customerId=1&productId=999&qty=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRemoveFromCart_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCartService{}
	router := gin.New()
	router.DELETE("/cart/remove", removeFromCartHandler(svc))

	req := httptest.NewRequest(http.MethodDelete, "/cart/remove?customerId=1&productId=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Removed from cart" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestRemoveFromCart_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCartService{err: domain.ErrNotFound}
	router := gin.New()
	router.DELETE("/cart/remove", removeFromCartHandler(svc))

	req := httptest.NewRequest(http.MethodDelete, "/cart/remove?customerId=1&productId=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListCartItems_DefaultsCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCartService{}
	router := gin.New()
	router.GET("/shoppingcartitem", listCartItemsHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/shoppingcartitem", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.lastCustomerID != 1 {
		t.Fatalf("expected default customer 1, got %d", svc.lastCustomerID)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestCheckout_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCheckoutService{orderID: 42}
	router := gin.New()
	router.POST("/checkout", checkoutHandler(svc))

	payload := `{"customerId":1,"firstName":"Asha","lastName":"Rao","address":"12 Market Rd","phoneNumber":"5551234"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["orderID"] != float64(42) {
		t.Fatalf("unexpected orderID: %v", body["orderID"])
	}
	if body["firstName"] != "Asha" || body["phoneNumber"] != "5551234" {
		t.Fatalf("request fields not echoed: %v", body)
	}
	if svc.lastCustomerID != 1 {
		t.Fatalf("service called with customer %d", svc.lastCustomerID)
	}
}

func TestCheckout_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout", checkoutHandler(&stubCheckoutService{}))

	for _, payload := range []string{
		`{"customerId":1,"lastName":"Rao","address":"12 Market Rd","phoneNumber":"5551234"}`,
		`{"customerId":1,"firstName":"Asha","address":"12 Market Rd","phoneNumber":"5551234"}`,
		`{"customerId":1,"firstName":"Asha","lastName":"Rao","phoneNumber":"5551234"}`,
		`{"customerId":1,"firstName":"Asha","lastName":"Rao","address":"12 Market Rd"}`,
		`{"customerId":1,"firstName":"  ","lastName":"Rao","address":"12 Market Rd","phoneNumber":"5551234"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", payload, rec.Code)
		}
		if body := decodeBody(t, rec); body["message"] != "All fields are required" {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	}
}

func TestCheckout_CartErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payload := `{"customerId":1,"firstName":"Asha","lastName":"Rao","address":"12 Market Rd","phoneNumber":"5551234"}`

	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrCartNotFound, http.StatusNotFound},
		{domain.ErrEmptyCart, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		router := gin.New()
		router.POST("/checkout", checkoutHandler(&stubCheckoutService{err: tc.err}))

		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestRestock_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubInventoryService{}
	router := gin.New()
	router.POST("/products/restock", restockHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/products/restock", strings.NewReader(`{"productId":5,"quantity":7}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Product ID 5 restocked by 7" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if svc.lastProductID != 5 || svc.lastQty != 7 {
		t.Fatalf("service called with %d/%d", svc.lastProductID, svc.lastQty)
	}
}

func TestRestock_InvalidQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubInventoryService{err: domain.ErrInvalidArgument}
	router := gin.New()
	router.POST("/products/restock", restockHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/products/restock", strings.NewReader(`{"productId":5,"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogService{err: domain.ErrNotFound}
	router := gin.New()
	router.GET("/products/:id", getProductHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestSearchProducts_FilterPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogService{}
	router := gin.New()
	router.GET("/products/search", searchProductsHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/products/search?department=3&category=Dairy&brand=Amul", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	want := productrepo.SearchFilter{DepartmentID: 3, Category: "Dairy", Brand: "Amul"}
	if svc.filter != want {
		t.Fatalf("filter = %+v, want %+v", svc.filter, want)
	}
}

func TestCreateProduct_BadExpiry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products", createProductHandler(&stubCatalogService{}))

	payload := `{"name":"Milk","departmentId":1,"category":"Dairy","brand":"Amul","quantity":5,"expiryDate":"31-12-2026"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

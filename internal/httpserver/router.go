package httpserver

import (
	"context"
	"log"

	"departmental-store/internal/domain"
	productrepo "departmental-store/internal/repository/product"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService is the product/department read surface plus admin mutations.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	SearchProducts(ctx context.Context, filter productrepo.SearchFilter) ([]domain.Product, error)
	BrowseByDepartment(ctx context.Context, name string) ([]domain.DepartmentProduct, error)
	CreateProduct(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
}

type CartService interface {
	AddItem(ctx context.Context, customerID, productID int64, qty int) (int64, error)
	RemoveItem(ctx context.Context, customerID, productID int64) error
	List(ctx context.Context) ([]domain.Cart, error)
	Items(ctx context.Context, customerID int64) ([]domain.CartItem, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, customerID int64) (int64, error)
}

type InventoryService interface {
	Restock(ctx context.Context, productID int64, qty int) error
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListItems(ctx context.Context) ([]domain.OrderItem, error)
	History(ctx context.Context, customerID int64) ([]domain.OrderHistoryEntry, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	CatalogSvc   CatalogService
	CustomerSvc  CustomerService
	CartSvc      CartService
	CheckoutSvc  CheckoutService
	InventorySvc InventoryService
	OrderSvc     OrderService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/search", searchProductsHandler(deps.CatalogSvc))
	router.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	router.POST("/products", createProductHandler(deps.CatalogSvc))
	router.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
	router.POST("/products/restock", restockHandler(deps.InventorySvc))
	router.GET("/browse/department/:name", browseDepartmentHandler(deps.CatalogSvc))

	router.GET("/department", listDepartmentsHandler(deps.CatalogSvc))
	router.GET("/customers", listCustomersHandler(deps.CustomerSvc))

	router.GET("/shoppingcart", listCartsHandler(deps.CartSvc))
	router.GET("/shoppingcartitem", listCartItemsHandler(deps.CartSvc))
	router.GET("/cart/add", addToCartHandler(deps.CartSvc))
	router.DELETE("/cart/remove", removeFromCartHandler(deps.CartSvc))

	router.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
	router.GET("/orders", listOrdersHandler(deps.OrderSvc))
	router.GET("/orderitem", listOrderItemsHandler(deps.OrderSvc))
	router.GET("/orders/history/:customerId", orderHistoryHandler(deps.OrderSvc))

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

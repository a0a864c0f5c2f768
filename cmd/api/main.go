package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"departmental-store/internal/config"
	"departmental-store/internal/db"
	"departmental-store/internal/httpserver"
	"departmental-store/internal/pricing"
	cartrepo "departmental-store/internal/repository/cart"
	customerrepo "departmental-store/internal/repository/customer"
	departmentrepo "departmental-store/internal/repository/department"
	"departmental-store/internal/repository/inventory"
	orderrepo "departmental-store/internal/repository/order"
	productrepo "departmental-store/internal/repository/product"
	cartsvc "departmental-store/internal/service/cart"
	catalogsvc "departmental-store/internal/service/catalog"
	checkoutsvc "departmental-store/internal/service/checkout"
	inventorysvc "departmental-store/internal/service/inventory"
	ordersvc "departmental-store/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	departmentRepo := departmentrepo.NewPostgres(dbpool)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	ledger := inventory.NewLedger(dbpool, logger)

	pricer := pricing.Fixed{Cents: cfg.PlaceholderPriceCents}

	catalogService := catalogsvc.New(productRepo, departmentRepo)
	cartService := cartsvc.New(cartRepo)
	checkoutService := checkoutsvc.New(orderRepo, customerRepo, pricer)
	inventoryService := inventorysvc.New(ledger)
	orderService := ordersvc.New(orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:   catalogService,
		CustomerSvc:  customerRepo,
		CartSvc:      cartService,
		CheckoutSvc:  checkoutService,
		InventorySvc: inventoryService,
		OrderSvc:     orderService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

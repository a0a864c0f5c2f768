package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	CustomerID  int64  `json:"customerId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

type restockRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func checkoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if strings.TrimSpace(req.FirstName) == "" ||
			strings.TrimSpace(req.LastName) == "" ||
			strings.TrimSpace(req.Address) == "" ||
			strings.TrimSpace(req.PhoneNumber) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}

		orderID, err := svc.Checkout(c.Request.Context(), req.CustomerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"orderID":     orderID,
			"firstName":   req.FirstName,
			"lastName":    req.LastName,
			"address":     req.Address,
			"phoneNumber": req.PhoneNumber,
		})
	}
}

func restockHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req restockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if err := svc.Restock(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Product ID %d restocked by %d", req.ProductID, req.Quantity),
		})
	}
}

func listOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func listOrderItemsHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ListItems(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func orderHistoryHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := pathID(c, "customerId")
		if !ok {
			return
		}
		history, err := svc.History(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

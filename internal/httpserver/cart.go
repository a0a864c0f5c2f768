package httpserver

import (
	"net/http"
	"strconv"

	"departmental-store/internal/domain"

	"github.com/gin-gonic/gin"
)

func listCartsHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

func listCartItemsHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := int64(1)
		if v := c.Query("customerId"); v != "" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid customerId"})
				return
			}
			customerID = parsed
		}
		items, err := svc.Items(c.Request.Context(), customerID)
		if err != nil {
			respondError(c, err)
			return
		}
		if items == nil {
			// No cart yet reads as an empty list, matching the read endpoints.
			items = []domain.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

func addToCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := queryID(c, "customerId")
		if !ok {
			return
		}
		productID, ok := queryID(c, "productId")
		if !ok {
			return
		}
		qty, err := strconv.Atoi(c.Query("qty"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid qty"})
			return
		}

		cartID, err := svc.AddItem(c.Request.Context(), customerID, productID, qty)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "cartId": cartID})
	}
}

func removeFromCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := queryID(c, "customerId")
		if !ok {
			return
		}
		productID, ok := queryID(c, "productId")
		if !ok {
			return
		}

		if err := svc.RemoveItem(c.Request.Context(), customerID, productID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
	}
}

func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return id, true
}

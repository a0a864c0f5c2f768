package httpserver

import (
	"net/http"
	"strconv"
	"time"

	productrepo "departmental-store/internal/repository/product"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		product, err := svc.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func searchProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter productrepo.SearchFilter
		if v := c.Query("department"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid department"})
				return
			}
			filter.DepartmentID = id
		}
		filter.Category = c.Query("category")
		filter.Brand = c.Query("brand")

		products, err := svc.SearchProducts(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func browseDepartmentHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.BrowseByDepartment(c.Request.Context(), c.Param("name"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

type createProductRequest struct {
	Name         string `json:"name"`
	DepartmentID int64  `json:"departmentId"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	Quantity     int    `json:"quantity"`
	ExpiryDate   string `json:"expiryDate"`
}

func createProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		in := productrepo.CreateProductInput{
			Name:         req.Name,
			DepartmentID: req.DepartmentID,
			Category:     req.Category,
			Brand:        req.Brand,
			Stock:        req.Quantity,
		}
		if req.ExpiryDate != "" {
			expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid expiryDate, want YYYY-MM-DD"})
				return
			}
			in.ExpiryDate = &expiry
		}

		product, err := svc.CreateProduct(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func deleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		if err := svc.DeleteProduct(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func listDepartmentsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		departments, err := svc.ListDepartments(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, departments)
	}
}

func listCustomersHandler(svc CustomerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

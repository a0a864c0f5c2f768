package domain

import "time"

type Product struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	DepartmentID    int64      `json:"departmentId"`
	Category        string     `json:"category"`
	Brand           string     `json:"brand"`
	QuantityInStock int        `json:"quantityInStock"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentProduct is a product row joined with its department, as returned
// by browse-by-department queries.
type DepartmentProduct struct {
	Product
	DepartmentName string `json:"departmentName"`
}

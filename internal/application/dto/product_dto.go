package dto

import "time"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name     string `json:"name"`
	Detail   string `json:"detail,omitempty"`
	Category string `json:"category"` // INDIVIDUAL | COLLECTIVE
}

// UpdateProductRequest body para PUT /api/products/:id. La categoría solo puede
// cambiar mientras el producto no tenga movimientos.
type UpdateProductRequest struct {
	Name     string `json:"name"`
	Detail   string `json:"detail,omitempty"`
	Category string `json:"category"`
}

// ProductResponse representación HTTP de un producto del catálogo.
type ProductResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail,omitempty"`
	Category  string    `json:"category"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

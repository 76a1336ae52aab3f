package models

import "time"

// Product represents a single catalog entry.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255);index"`
	Brand       string    `json:"brand" gorm:"type:varchar(100);index"`
	Category    string    `json:"category" gorm:"type:varchar(100);index"`
	Price       float64   `json:"price" gorm:"index"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductRequest is the body for POST /products. All five business
// fields are required. Price is a pointer so a legitimate price of 0 is
// distinguishable from an omitted field.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description string   `json:"description" validate:"required"`
}

// UpdateProductRequest is the body for PUT /products/:id. Every field is
// optional; nil means "leave unchanged".
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Brand       *string  `json:"brand"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// ProductPage is the response shape of the list endpoint.
type ProductPage struct {
	Products    []Product `json:"products"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	Total       int64     `json:"total"`
}

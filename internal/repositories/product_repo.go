package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrProductNotFound is returned when an id does not match any product.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns the page of products matching the query's filter,
	// ordered and windowed, together with the total number of matches
	// ignoring pagination.
	List(query models.ProductQuery) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ErrInvalidProduct is wrapped by all field-level validation failures on
// update, so handlers can map them to a client error.
var ErrInvalidProduct = errors.New("invalid product")

// ProductService handles business logic related to catalog products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional, nil when no broker is configured
}

// NewProductService creates a new ProductService. mqClient may be nil;
// catalog events are then skipped.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// ListProducts returns one page of products matching the query, together
// with the paging metadata the list endpoint exposes.
func (s *ProductService) ListProducts(query models.ProductQuery) (*models.ProductPage, error) {
	products, total, err := s.repo.List(query)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(query.Limit)))
	}

	return &models.ProductPage{
		Products:    products,
		CurrentPage: query.Page,
		TotalPages:  totalPages,
		Total:       total,
	}, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product and publishes a creation event.
// The request is assumed to be validated by the handler.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       *req.Price,
		Description: req.Description,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}

	s.publishEvent("product.created", product)
	return &product, nil
}

// UpdateProduct applies the non-nil fields of req to the product with the
// given id and persists the result. Fields omitted from the request are
// left unchanged.
func (s *ProductService) UpdateProduct(id string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(product, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.publishEvent("product.updated", *product)
	return product, nil
}

func applyUpdate(product *models.Product, req models.UpdateProductRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name must not be empty", ErrInvalidProduct)
		}
		product.Name = *req.Name
	}
	if req.Brand != nil {
		if strings.TrimSpace(*req.Brand) == "" {
			return fmt.Errorf("%w: brand must not be empty", ErrInvalidProduct)
		}
		product.Brand = *req.Brand
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return fmt.Errorf("%w: category must not be empty", ErrInvalidProduct)
		}
		product.Category = *req.Category
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return fmt.Errorf("%w: description must not be empty", ErrInvalidProduct)
		}
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
		}
		product.Price = *req.Price
	}
	return nil
}

// DeleteProduct removes a product by its ID and publishes a deletion event.
func (s *ProductService) DeleteProduct(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("product.deleted", *product)
	return nil
}

// publishEvent emits a catalog event best-effort: a missing broker or a
// failed publish never fails the request.
func (s *ProductService) publishEvent(action string, product models.Product) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProductEvent(action, product); err != nil {
		log.Printf("Failed to publish %s event for product %s: %v", action, product.ID, err)
	}
}

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog/internal/models"
	"catalog/internal/repositories"
)

func pricePtr(v float64) *float64 { return &v }

// seedCatalog fills a repository with a small fixed catalog.
func seedCatalog(t *testing.T, repo repositories.ProductRepository) []models.Product {
	t.Helper()

	products := []models.Product{
		{Name: "Chair", Brand: "Acme", Category: "Furniture", Price: 100, Description: "A chair"},
		{Name: "Table", Brand: "Acme", Category: "Furniture", Price: 250, Description: "A table"},
		{Name: "Lamp", Brand: "Lumen", Category: "Lighting", Price: 40, Description: "A lamp"},
		{Name: "Desk", Brand: "Acme", Category: "Office", Price: 180, Description: "A desk"},
		{Name: "Bulb", Brand: "Lumen", Category: "Lighting", Price: 5, Description: "A bulb"},
	}
	for i := range products {
		assert.NoError(t, repo.Create(&products[i]))
	}
	return products
}

func listQuery() models.ProductQuery {
	return models.ProductQuery{Page: 1, Limit: models.DefaultPageSize}
}

func TestMemoryRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	product := models.Product{Name: "Chair", Brand: "Acme", Category: "Furniture", Price: 100, Description: "x"}
	assert.NoError(t, repo.Create(&product))
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	assert.False(t, product.UpdatedAt.IsZero())

	stored, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Chair", stored.Name)
}

func TestMemoryRepository_FilterIsConjunction(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedCatalog(t, repo)

	query := listQuery()
	query.Brand = "Acme"
	products, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, total)
	for _, p := range products {
		assert.Equal(t, "Acme", p.Brand)
	}

	query.Category = "Furniture"
	products, total, err = repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, p := range products {
		assert.Equal(t, "Acme", p.Brand)
		assert.Equal(t, "Furniture", p.Category)
	}

	query.Brand = "Lumen" // Lumen makes no furniture
	_, total, err = repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestMemoryRepository_PriceBoundsAreInclusive(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedCatalog(t, repo)

	query := listQuery()
	query.MinPrice = pricePtr(100)
	_, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 3, total) // 100, 180, 250

	query.MaxPrice = pricePtr(180)
	products, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, total) // closed range [100, 180]
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 100.0)
		assert.LessOrEqual(t, p.Price, 180.0)
	}

	query = listQuery()
	query.MaxPrice = pricePtr(40)
	_, total, err = repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, total) // 5, 40
}

func TestMemoryRepository_SortOrder(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedCatalog(t, repo)

	query := listQuery()
	query.SortField = "price"
	query.SortDesc = true
	products, _, err := repo.List(query)
	assert.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(t, products[i-1].Price, products[i].Price)
	}

	query.SortField = "name"
	query.SortDesc = false
	products, _, err = repo.List(query)
	assert.NoError(t, err)
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Name, products[i].Name)
	}

	// Unknown sort fields fall back to natural order without error.
	query.SortField = "bogus"
	_, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 5, total)
}

func TestMemoryRepository_SortSpansPages(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedCatalog(t, repo)

	query := models.ProductQuery{Page: 1, Limit: 2, SortField: "price", SortDesc: true}
	firstPage, _, err := repo.List(query)
	assert.NoError(t, err)
	assert.Len(t, firstPage, 2)

	query.Page = 2
	secondPage, _, err := repo.List(query)
	assert.NoError(t, err)
	assert.Len(t, secondPage, 2)

	// The order holds across the page boundary, not just within a page.
	assert.GreaterOrEqual(t, firstPage[1].Price, secondPage[0].Price)
}

func TestMemoryRepository_PageWindow(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedCatalog(t, repo)

	query := models.ProductQuery{Page: 2, Limit: 2}
	products, total, err := repo.List(query)
	assert.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, products, 2)

	// Last page holds the remainder.
	query.Page = 3
	products, _, err = repo.List(query)
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	// Pages past the end are empty, not an error.
	query.Page = 9
	products, _, err = repo.List(query)
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestMemoryRepository_UpdateAndDelete(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seeded := seedCatalog(t, repo)
	chair := seeded[0]

	chair.Price = 150
	assert.NoError(t, repo.Update(&chair))
	stored, err := repo.GetByID(chair.ID)
	assert.NoError(t, err)
	assert.Equal(t, 150.0, stored.Price)

	missing := models.Product{ID: "no-such-id", Name: "Ghost"}
	err = repo.Update(&missing)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	assert.NoError(t, repo.Delete(chair.ID))
	_, err = repo.GetByID(chair.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	// Deleting twice reports not found the second time.
	err = repo.Delete(chair.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

package catalog

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is the read-only source of products offered on the shop page.
type Catalog interface {
	// GetAllProducts returns every product ordered by id.
	GetAllProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns the product with the given id or ErrProductNotFound.
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
}

var defaultProducts = []domain.Product{
	{ID: 1, Title: "Laptop", Description: "High performance laptop", Price: 1200},
	{ID: 2, Title: "Headphones", Description: "Noise cancelling headphones", Price: 200},
	{ID: 3, Title: "Smartphone", Description: "Latest model smartphone", Price: 800},
}

// Static serves the built-in product list.
type Static struct{}

func NewStatic() Static {
	return Static{}
}

func (Static) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	products := make([]domain.Product, len(defaultProducts))
	copy(products, defaultProducts)
	return products, nil
}

func (Static) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	return findProduct(defaultProducts, id)
}

func findProduct(products []domain.Product, id int64) (domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"golang.org/x/sync/singleflight"
)

// loadTimeout bounds a shared load, which outlives its callers' contexts.
const loadTimeout = 10 * time.Second

// Cached keeps the first successful product listing of src in memory.
// The catalog is read-only, so the listing never needs invalidating.
type Cached struct {
	src Catalog
	sfg singleflight.Group // collapses concurrent first loads

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
}

func NewCached(src Catalog) *Cached {
	return &Cached{src: src}
}

func (c *Cached) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out, nil
}

func (c *Cached) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	products, err := c.load(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	return findProduct(products, id)
}

func (c *Cached) load(ctx context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	if c.loaded {
		products := c.products
		c.mu.RUnlock()
		return products, nil
	}
	c.mu.RUnlock()

	// The shared load must not die with whichever caller started it; each
	// caller still stops waiting when its own ctx is done.
	ch := c.sfg.DoChan("products", func() (interface{}, error) {
		c.mu.RLock()
		if c.loaded {
			products := c.products
			c.mu.RUnlock()
			return products, nil
		}
		c.mu.RUnlock()

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		products, err := c.src.GetAllProducts(loadCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.products = products
		c.loaded = true
		c.mu.Unlock()

		return products, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.Product), nil
	}
}

package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCatalog struct {
	calls atomic.Int32
	delay time.Duration
	err   error
}

func (c *countingCatalog) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	c.calls.Add(1)
	time.Sleep(c.delay)
	if c.err != nil {
		return nil, c.err
	}
	return NewStatic().GetAllProducts(ctx)
}

func (c *countingCatalog) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	return NewStatic().GetProduct(ctx, id)
}

func TestCached_LoadsOnce(t *testing.T) {
	src := &countingCatalog{delay: 20 * time.Millisecond}
	cached := NewCached(src)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products, err := cached.GetAllProducts(context.Background())
			assert.NoError(t, err)
			assert.Len(t, products, 3)
		}()
	}
	wg.Wait()

	_, err := cached.GetProduct(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int32(1), src.calls.Load())
}

func TestCached_GetProduct_NotFound(t *testing.T) {
	cached := NewCached(NewStatic())

	_, err := cached.GetProduct(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCached_ErrorIsNotCached(t *testing.T) {
	src := &countingCatalog{err: errors.New("db down")}
	cached := NewCached(src)

	_, err := cached.GetAllProducts(context.Background())
	require.Error(t, err)

	src.err = nil
	products, err := cached.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, int32(2), src.calls.Load())
}

type blockingCatalog struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (b *blockingCatalog) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
	}
	<-b.release
	return NewStatic().GetAllProducts(ctx)
}

func (b *blockingCatalog) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	return NewStatic().GetProduct(ctx, id)
}

func TestCached_FirstCallerCancelDoesNotFailOthers(t *testing.T) {
	src := &blockingCatalog{started: make(chan struct{}), release: make(chan struct{})}
	cached := NewCached(src)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cached.GetAllProducts(ctx)
		firstErr <- err
	}()
	<-src.started

	type result struct {
		products []domain.Product
		err      error
	}
	second := make(chan result, 1)
	go func() {
		products, err := cached.GetAllProducts(context.Background())
		second <- result{products, err}
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(src.release)
	res := <-second
	require.NoError(t, res.err)
	assert.Len(t, res.products, 3)
	assert.Equal(t, int32(1), src.calls.Load())
}

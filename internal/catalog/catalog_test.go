package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_GetAllProducts_Ordered(t *testing.T) {
	products, err := NewStatic().GetAllProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 3)
	assert.Equal(t, "Laptop", products[0].Title)
	assert.Equal(t, float64(1200), products[0].Price)
	assert.Equal(t, "Headphones", products[1].Title)
	assert.Equal(t, "Smartphone", products[2].Title)
}

func TestStatic_GetAllProducts_ReturnsCopy(t *testing.T) {
	products, err := NewStatic().GetAllProducts(context.Background())
	require.NoError(t, err)
	products[0].Title = "changed"

	again, err := NewStatic().GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Laptop", again[0].Title)
}

func TestStatic_GetProduct(t *testing.T) {
	p, err := NewStatic().GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Headphones", p.Title)

	_, err = NewStatic().GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStatic_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatic().GetAllProducts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

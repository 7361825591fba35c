package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Repository {
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.RunMigrations())
	return repo
}

func TestRepository_GetAllProducts_MatchesStatic(t *testing.T) {
	repo := setupTestDB(t)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)

	expected, err := NewStatic().GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestRepository_RunMigrationsTwice(t *testing.T) {
	repo := setupTestDB(t)

	assert.NoError(t, repo.RunMigrations())

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestRepository_GetProduct(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	p, err := repo.GetProduct(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Smartphone", p.Title)
	assert.Equal(t, "Latest model smartphone", p.Description)
	assert.Equal(t, float64(800), p.Price)
}

func TestRepository_GetProduct_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetProduct(context.Background(), -1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRepository_GetAllProducts_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetAllProducts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

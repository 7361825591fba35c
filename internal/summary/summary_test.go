package summary

import (
	"testing"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	v := Build(domain.Cart{})

	assert.True(t, v.Empty)
	assert.Equal(t, EmptyMessage, v.EmptyMessage)
	assert.Empty(t, v.Lines)
	assert.Equal(t, float64(0), v.Total)
}

func TestBuild_LaptopThenHeadphones(t *testing.T) {
	c := domain.Cart{Items: []domain.Product{
		{ID: 1, Title: "Laptop", Price: 1200},
		{ID: 2, Title: "Headphones", Price: 200},
	}}

	v := Build(c)

	assert.False(t, v.Empty)
	assert.Empty(t, v.EmptyMessage)
	require.Len(t, v.Lines, 2)
	assert.Equal(t, Line{Title: "Laptop", Price: 1200}, v.Lines[0])
	assert.Equal(t, Line{Title: "Headphones", Price: 200}, v.Lines[1])
	assert.Equal(t, float64(1400), v.Total)
	assert.Equal(t, 2, v.Count)
}

func TestBuild_DuplicatesListedSeparately(t *testing.T) {
	laptop := domain.Product{ID: 1, Title: "Laptop", Price: 1200}

	v := Build(domain.Cart{Items: []domain.Product{laptop, laptop}})

	assert.Len(t, v.Lines, 2)
	assert.Equal(t, float64(2400), v.Total)
}

package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit-00/shop-kit/internal/model"
)

func testCatalogs() []model.Catalog {
	return []model.Catalog{
		{
			ID:   "featured",
			Name: "Featured",
			Products: []model.Product{
				{ID: "1", Name: "Watch", Price: decimal.RequireFromString("299.99")},
				{ID: "2", Name: "Lamp", Price: decimal.RequireFromString("149.99")},
			},
		},
		{
			ID:   "new-arrivals",
			Name: "New Arrivals",
			Products: []model.Product{
				// Same id as in "featured": ids are only unique per catalog.
				{ID: "1", Name: "Notebook", Price: decimal.RequireFromString("39.99")},
				{ID: "3", Name: "Chair", Price: decimal.RequireFromString("399.99")},
			},
		},
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(testCatalogs())

	t.Run("returns catalogs keyed by id", func(t *testing.T) {
		catalogs := p.Catalogs()
		require.Len(t, catalogs, 2)
		assert.Equal(t, "Featured", catalogs["featured"].Name)
		assert.Equal(t, "New Arrivals", catalogs["new-arrivals"].Name)
	})

	t.Run("flattens products in catalog order", func(t *testing.T) {
		products := p.Products()
		require.Len(t, products, 4)
		assert.Equal(t, "Watch", products[0].Name)
		assert.Equal(t, "Chair", products[3].Name)
	})

	t.Run("product lookup returns first match across catalogs", func(t *testing.T) {
		product, ok := p.ProductByID("1")
		require.True(t, ok)
		assert.Equal(t, "Watch", product.Name)

		product, ok = p.ProductByID("3")
		require.True(t, ok)
		assert.Equal(t, "Chair", product.Name)
	})

	t.Run("product lookup reports unknown ids", func(t *testing.T) {
		_, ok := p.ProductByID("missing")
		assert.False(t, ok)
	})
}

func TestSeedCatalogs(t *testing.T) {
	p := NewStaticProvider(SeedCatalogs())

	catalogs := p.Catalogs()
	require.Contains(t, catalogs, "featured")
	require.Contains(t, catalogs, "new-arrivals")

	for _, c := range catalogs {
		for _, product := range c.Products {
			assert.NotEmpty(t, product.ID)
			assert.NotEmpty(t, product.Name)
			assert.False(t, product.Price.IsNegative())
			assert.NotEmpty(t, product.Images)
		}
	}
}

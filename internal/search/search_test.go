package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amit-00/shop-kit/internal/model"
)

func products(names ...string) []model.Product {
	out := make([]model.Product, len(names))
	for i, name := range names {
		out[i] = model.Product{ID: name, Name: name}
	}
	return out
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	t.Run("empty query returns input unchanged", func(t *testing.T) {
		in := products("Blue Shirt", "Red Shirt", "Blue Hat")

		out := Search(in, "")
		assert.Equal(t, in, out)

		out = Search(in, "   \t  ")
		assert.Equal(t, in, out)
	})

	t.Run("requires every term to match", func(t *testing.T) {
		in := products("Blue Shirt", "Red Shirt", "Blue Hat")

		out := Search(in, "blue shirt")
		require.Len(t, out, 1)
		assert.Equal(t, "Blue Shirt", out[0].Name)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		in := products("Blue Shirt")

		out := Search(in, "BLUE")
		require.Len(t, out, 1)
	})

	t.Run("name matches rank above description matches", func(t *testing.T) {
		in := []model.Product{
			{ID: "desc", Name: "Casual Top", Description: "A comfortable shirt for every day"},
			{ID: "name", Name: "Linen Shirt"},
		}

		out := Search(in, "shirt")
		require.Len(t, out, 2)
		assert.Equal(t, []string{"name", "desc"}, ids(out))
	})

	t.Run("term in both name and description scores highest", func(t *testing.T) {
		in := []model.Product{
			{ID: "name-only", Name: "Linen Shirt"},
			{ID: "both", Name: "Oxford Shirt", Description: "A classic shirt"},
		}

		out := Search(in, "shirt")
		require.Len(t, out, 2)
		assert.Equal(t, []string{"both", "name-only"}, ids(out))
	})

	t.Run("ties keep input order", func(t *testing.T) {
		in := products("Blue Shirt", "Red Shirt", "Green Shirt")

		out := Search(in, "shirt")
		assert.Equal(t, []string{"Blue Shirt", "Red Shirt", "Green Shirt"}, ids(out))
	})

	t.Run("missing description never matches", func(t *testing.T) {
		in := []model.Product{{ID: "p", Name: "Hat"}}

		out := Search(in, "hat comfortable")
		assert.Empty(t, out)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		in := products("Blue Shirt", "Aqua Shirt", "Blue Hat")
		want := products("Blue Shirt", "Aqua Shirt", "Blue Hat")

		Search(in, "blue")
		assert.Equal(t, want, in)
	})
}

func TestSearchText(t *testing.T) {
	t.Run("concatenates lowercased name and description", func(t *testing.T) {
		p := model.Product{Name: "Blue Shirt", Description: "Soft Cotton"}
		assert.Equal(t, "blue shirt soft cotton", SearchText(p))
	})

	t.Run("trims when description is absent", func(t *testing.T) {
		p := model.Product{Name: "Blue Shirt"}
		assert.Equal(t, "blue shirt", SearchText(p))
	})
}

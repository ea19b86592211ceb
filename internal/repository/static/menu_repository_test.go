package static_test

import (
	"context"
	"testing"

	"ahkii-burger-backend/internal/domain"
	"ahkii-burger-backend/internal/repository/static"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFetchByCategory(t *testing.T) {
	repo := static.NewMenuRepository()
	ctx := context.Background()

	for _, category := range domain.Categories {
		t.Run(string(category), func(t *testing.T) {
			items, err := repo.FetchByCategory(ctx, category)
			require.NoError(t, err)
			assert.NotEmpty(t, items)
			for _, item := range items {
				assert.Equal(t, category, item.Category)
			}

			// Repeated calls return equal sequences
			again, err := repo.FetchByCategory(ctx, category)
			require.NoError(t, err)
			assert.Equal(t, items, again)
		})
	}

	burgers, err := repo.FetchByCategory(ctx, domain.CategoryBurger)
	require.NoError(t, err)
	ids := make([]string, 0, len(burgers))
	for _, item := range burgers {
		ids = append(ids, item.ID)
	}
	assert.Contains(t, ids, "classic")
}

func TestCatalogFetchAllOrder(t *testing.T) {
	repo := static.NewMenuRepository()
	ctx := context.Background()

	all, err := repo.FetchAll(ctx)
	require.NoError(t, err)

	// Full menu is the concatenation of the per-category lists in fixed
	// category order
	var expected []domain.MenuItem
	for _, category := range domain.Categories {
		items, err := repo.FetchByCategory(ctx, category)
		require.NoError(t, err)
		expected = append(expected, items...)
	}
	assert.Equal(t, expected, all)
}

func TestCatalogUniqueIDs(t *testing.T) {
	repo := static.NewMenuRepository()

	all, err := repo.FetchAll(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool, len(all))
	for _, item := range all {
		assert.Falsef(t, seen[item.ID], "duplicate id %q", item.ID)
		seen[item.ID] = true
		assert.True(t, item.Category.IsValid(), "item %q has invalid category %q", item.ID, item.Category)
		assert.GreaterOrEqual(t, item.Price, 0.0)
	}
}

func TestCatalogGetByID(t *testing.T) {
	repo := static.NewMenuRepository()
	ctx := context.Background()

	t.Run("known id", func(t *testing.T) {
		item, err := repo.GetByID(ctx, "classic")
		require.NoError(t, err)
		assert.Equal(t, "classic", item.ID)
		assert.Equal(t, "The Ahkii Classic", item.Name)
		assert.Equal(t, 11.99, item.Price)
		assert.Equal(t, domain.CategoryBurger, item.Category)
	})

	t.Run("absent id is a normal not-found, not a fault", func(t *testing.T) {
		item, err := repo.GetByID(ctx, "nope")
		assert.Nil(t, item)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("every listed item is retrievable by its id", func(t *testing.T) {
		all, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		for _, listed := range all {
			item, err := repo.GetByID(ctx, listed.ID)
			require.NoError(t, err)
			assert.Equal(t, listed.ID, item.ID)
		}
	})
}

func TestCatalogIsImmutable(t *testing.T) {
	repo := static.NewMenuRepository()
	ctx := context.Background()

	first, err := repo.FetchAll(ctx)
	require.NoError(t, err)

	// Callers get copies; scribbling on them must not leak into the catalog
	first[0].Name = "tampered"
	first[0].Price = 0

	second, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "The Ahkii Classic", second[0].Name)
	assert.Equal(t, 11.99, second[0].Price)
}

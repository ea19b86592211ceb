package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ahkii-burger-backend/internal/domain"
	"ahkii-burger-backend/internal/repository/static"
	"ahkii-burger-backend/internal/usecase"
	"ahkii-burger-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuUsecase() domain.MenuUsecase {
	return usecase.NewMenuUsecase(static.NewMenuRepository())
}

func TestListMenuNoFilter(t *testing.T) {
	uc := newMenuUsecase()

	items, err := uc.ListMenu(context.Background(), domain.MenuFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 20)
}

func TestListMenuCategoryFilter(t *testing.T) {
	uc := newMenuUsecase()

	items, err := uc.ListMenu(context.Background(), domain.MenuFilter{Category: "sides"})
	require.NoError(t, err)
	assert.Len(t, items, 5)
	for _, item := range items {
		assert.Equal(t, domain.CategorySides, item.Category)
	}
}

func TestListMenuTextSearch(t *testing.T) {
	uc := newMenuUsecase()
	ctx := context.Background()

	t.Run("matches name case-insensitively", func(t *testing.T) {
		for _, query := range []string{"classic", "CLASSIC", "  Classic  "} {
			items, err := uc.ListMenu(ctx, domain.MenuFilter{Query: query})
			require.NoError(t, err)
			names := itemNames(items)
			assert.Containsf(t, names, "The Ahkii Classic", "query %q", query)
		}
	})

	t.Run("matches description too", func(t *testing.T) {
		items, err := uc.ListMenu(ctx, domain.MenuFilter{Query: "jalapeños"})
		require.NoError(t, err)
		names := itemNames(items)
		assert.Contains(t, names, "The Heatwave")
		assert.Contains(t, names, "The Sweet & Spicy")
	})

	t.Run("no match is an empty result, not an error", func(t *testing.T) {
		items, err := uc.ListMenu(ctx, domain.MenuFilter{Query: "sushi"})
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestListMenuWhitespaceQueryEqualsNoQuery(t *testing.T) {
	uc := newMenuUsecase()
	ctx := context.Background()

	unfiltered, err := uc.ListMenu(ctx, domain.MenuFilter{})
	require.NoError(t, err)

	for _, query := range []string{"", "   ", "\t\n "} {
		items, err := uc.ListMenu(ctx, domain.MenuFilter{Query: query})
		require.NoError(t, err)
		assert.Equalf(t, unfiltered, items, "query %q", query)
	}
}

func TestListMenuFiltersAreConjunctive(t *testing.T) {
	uc := newMenuUsecase()
	ctx := context.Background()

	// "fries" matches sides by name and nothing in drinks
	items, err := uc.ListMenu(ctx, domain.MenuFilter{Category: "sides", Query: "fries"})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, domain.CategorySides, item.Category)
		matched := strings.Contains(strings.ToLower(item.Name), "fries") ||
			strings.Contains(strings.ToLower(item.Description), "fries")
		assert.True(t, matched)
	}

	empty, err := uc.ListMenu(ctx, domain.MenuFilter{Category: "drinks", Query: "fries"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// Category and text predicates commute: applying them in either order
// yields the same subset in the same relative order.
func TestListMenuFilterCommutativity(t *testing.T) {
	uc := newMenuUsecase()
	ctx := context.Background()

	combined, err := uc.ListMenu(ctx, domain.MenuFilter{Category: "burger", Query: "cheese"})
	require.NoError(t, err)

	textOnly, err := uc.ListMenu(ctx, domain.MenuFilter{Query: "cheese"})
	require.NoError(t, err)
	var textThenCategory []domain.MenuItem
	for _, item := range textOnly {
		if item.Category == domain.CategoryBurger {
			textThenCategory = append(textThenCategory, item)
		}
	}

	assert.Equal(t, textThenCategory, combined)
}

func TestListMenuUnknownCategory(t *testing.T) {
	uc := newMenuUsecase()

	items, err := uc.ListMenu(context.Background(), domain.MenuFilter{Category: "desserts"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListMenuPreservesCatalogOrder(t *testing.T) {
	uc := newMenuUsecase()
	ctx := context.Background()

	all, err := uc.ListMenu(ctx, domain.MenuFilter{})
	require.NoError(t, err)

	filtered, err := uc.ListMenu(ctx, domain.MenuFilter{Query: "ahkii"})
	require.NoError(t, err)
	require.NotEmpty(t, filtered)

	// Every filtered item must appear in the same relative order as in
	// the full list
	pos := make(map[string]int, len(all))
	for i, item := range all {
		pos[item.ID] = i
	}
	for i := 1; i < len(filtered); i++ {
		assert.Less(t, pos[filtered[i-1].ID], pos[filtered[i].ID])
	}
}

func TestGetItemDetails(t *testing.T) {
	uc := newMenuUsecase()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		item, err := uc.GetItemDetails(ctx, "classic")
		require.NoError(t, err)
		assert.Equal(t, 11.99, item.Price)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		_, err := uc.GetItemDetails(ctx, "nope")
		require.Error(t, err)
		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestListFeatured(t *testing.T) {
	uc := newMenuUsecase()

	items, err := uc.ListFeatured(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.NotNil(t, item.TransparentImage)
	}
	names := itemNames(items)
	assert.Contains(t, names, "The Ahkii Classic")
	assert.Contains(t, names, "The Double Trouble")
	assert.Contains(t, names, "The Ahkii Special")
}

func itemNames(items []domain.MenuItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

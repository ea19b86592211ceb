package usecase

import (
	"context"
	"errors"
	"strings"

	"ahkii-burger-backend/internal/domain"
	"ahkii-burger-backend/pkg/apperror"
)

type menuUsecase struct {
	catalogRepo domain.CatalogRepository
}

func NewMenuUsecase(catalogRepo domain.CatalogRepository) domain.MenuUsecase {
	return &menuUsecase{catalogRepo: catalogRepo}
}

// ListMenu narrows the full catalog to the visible subset for the given
// search/filter state. Category and text filters are conjunctive, relative
// order from the catalog is preserved, and an empty result is a normal
// outcome (the menu page renders it as "no items found").
func (u *menuUsecase) ListMenu(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	items, err := u.catalogRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Category != "" {
		// Unknown categories simply match nothing
		filtered := items[:0:0]
		for _, item := range items {
			if string(item.Category) == filter.Category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		filtered := items[:0:0]
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), query) ||
				strings.Contains(strings.ToLower(item.Description), query) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

func (u *menuUsecase) ListByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	// Unknown categories are a normal empty result, no catalog round trip
	if !category.IsValid() {
		return []domain.MenuItem{}, nil
	}
	items, err := u.catalogRepo.FetchByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

func (u *menuUsecase) GetItemDetails(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, err := u.catalogRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Menu item not found")
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListFeatured returns the items carrying a transparent showcase image,
// used by the homepage burger showcase.
func (u *menuUsecase) ListFeatured(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := u.catalogRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	featured := []domain.MenuItem{}
	for _, item := range items {
		if item.TransparentImage != nil {
			featured = append(featured, item)
		}
	}
	return featured, nil
}

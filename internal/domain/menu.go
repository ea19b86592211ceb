package domain

import (
	"context"
	"errors"
	"strings"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Category partitions the menu catalog. Every item carries exactly one.
type Category string

const (
	CategoryBurger Category = "burger"
	CategorySides  Category = "sides"
	CategoryDrinks Category = "drinks"
)

// Categories lists every category in display order. The full menu is the
// concatenation of the per-category lists in this order.
var Categories = []Category{CategoryBurger, CategorySides, CategoryDrinks}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBurger, CategorySides, CategoryDrinks:
		return true
	}
	return false
}

type MenuItem struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"` // GBP
	Image             string   `json:"image"`
	CrossSectionImage *string  `json:"cross_section_image,omitempty"` // burgers only
	TransparentImage  *string  `json:"transparent_image,omitempty"`   // featured showcase only
	Category          Category `json:"category"`
	Spicy             bool     `json:"spicy,omitempty"`
	Vegetarian        bool     `json:"vegetarian,omitempty"`
	Vegan             bool     `json:"vegan,omitempty"`
}

// MenuFilter is the user-controlled search/filter state of the menu page.
// A zero value means "show everything".
type MenuFilter struct {
	Category string // empty = no category filter; unknown values match nothing
	Query    string // free text, matched case-insensitively against name and description
}

// IsZero reports whether no filter is active, i.e. the query is
// whitespace-only and no category is selected.
func (f MenuFilter) IsZero() bool {
	return f.Category == "" && strings.TrimSpace(f.Query) == ""
}

type CatalogRepository interface {
	// FetchAll returns the full catalog in fixed category order
	// (burgers, then sides, then drinks), each category in insertion order.
	FetchAll(ctx context.Context) ([]MenuItem, error)
	// FetchByCategory returns the items of one category in insertion order.
	FetchByCategory(ctx context.Context, category Category) ([]MenuItem, error)
	// GetByID returns ErrNotFound when no item carries the id.
	GetByID(ctx context.Context, id string) (*MenuItem, error)
}

type MenuUsecase interface {
	// ListMenu applies the filter over the full catalog. Both filters are
	// conjunctive; an empty result is a normal outcome, not an error.
	ListMenu(ctx context.Context, filter MenuFilter) ([]MenuItem, error)
	// ListByCategory returns one category's items. Unknown categories yield
	// an empty list.
	ListByCategory(ctx context.Context, category Category) ([]MenuItem, error)
	// GetItemDetails looks up a single item by its id/slug.
	GetItemDetails(ctx context.Context, id string) (*MenuItem, error)
	// ListFeatured returns the items with a transparent showcase image.
	ListFeatured(ctx context.Context) ([]MenuItem, error)
}

// Package static serves the compiled-in menu catalog. The catalog is
// reference data: defined once, read-only, safe for concurrent use.
package static

import (
	"context"

	"ahkii-burger-backend/internal/domain"
)

func strPtr(s string) *string { return &s }

// menuItems holds the full catalog in display order: burgers, then sides,
// then drinks. Insertion order within a category is significant and must
// stay stable across releases — ids double as public URL slugs.
var menuItems = []domain.MenuItem{
	// BURGERS
	{
		ID:                "classic",
		Name:              "The Ahkii Classic",
		Description:       "Angus beef patty, cheese, Ahkii sauce, lettuce, tomato, onions",
		Price:             11.99,
		Image:             "/images/burgers/classic.jpg",
		CrossSectionImage: strPtr("/images/burgers/classic-cross.jpg"),
		TransparentImage:  strPtr("/images/burgers/burger-transparent-2.png"),
		Category:          domain.CategoryBurger,
	},
	{
		ID:                "double-trouble",
		Name:              "The Double Trouble",
		Description:       "Double patty, double cheese, caramelised onions",
		Price:             13.99,
		Image:             "/images/burgers/double-trouble.jpg",
		CrossSectionImage: strPtr("/images/burgers/double-trouble-cross.jpg"),
		TransparentImage:  strPtr("/images/burgers/burger-transparent-1.png"),
		Category:          domain.CategoryBurger,
	},
	{
		ID:                "heatwave",
		Name:              "The Heatwave",
		Description:       "Jalapeños, spicy Ahkii sauce, pepperjack cheese, crispy onions",
		Price:             12.99,
		Image:             "/images/burgers/heatwave.jpg",
		CrossSectionImage: strPtr("/images/burgers/heatwave-cross.jpg"),
		Category:          domain.CategoryBurger,
		Spicy:             true,
	},
	{
		ID:                "bbq-stack",
		Name:              "The BBQ Stack",
		Description:       "Angus patty, smoky BBQ sauce, crispy onions, cheddar cheese",
		Price:             12.49,
		Image:             "/images/burgers/bbq-stack.jpg",
		CrossSectionImage: strPtr("/images/burgers/bbq-stack-cross.jpg"),
		Category:          domain.CategoryBurger,
	},
	{
		ID:                "melt",
		Name:              "The Melt",
		Description:       "Angus patty smothered in cheese sauce, pickles, Ahkii sauce",
		Price:             12.99,
		Image:             "/images/burgers/melt.jpg",
		CrossSectionImage: strPtr("/images/burgers/melt-cross.jpg"),
		Category:          domain.CategoryBurger,
	},
	{
		ID:                "veggie-way",
		Name:              "The Veggie Way",
		Description:       "Grilled plant-based patty, vegan cheese, lettuce, tomato, Ahkii sauce",
		Price:             11.99,
		Image:             "/images/burgers/veggie.jpg",
		CrossSectionImage: strPtr("/images/burgers/veggie-cross.jpg"),
		Category:          domain.CategoryBurger,
		Vegetarian:        true,
		Vegan:             true,
	},
	{
		ID:                "special",
		Name:              "The Ahkii Special",
		Description:       "Signature sauce, crispy fried onions, melted cheese blend",
		Price:             12.99,
		Image:             "/images/burgers/special.jpg",
		CrossSectionImage: strPtr("/images/burgers/special-cross.jpg"),
		TransparentImage:  strPtr("/images/burgers/burger-transparent-3.png"),
		Category:          domain.CategoryBurger,
	},
	{
		ID:                "truffle-boss",
		Name:              "The Truffle Boss",
		Description:       "Angus patty, truffle mayo, caramelised onions, Swiss cheese",
		Price:             13.99,
		Image:             "/images/burgers/truffle.jpg",
		CrossSectionImage: strPtr("/images/burgers/truffle-cross.jpg"),
		Category:          domain.CategoryBurger,
	},
	{
		ID:                "sweet-spicy",
		Name:              "The Sweet & Spicy",
		Description:       "Hot honey glaze, jalapeños, cheddar, Ahkii sauce",
		Price:             12.99,
		Image:             "/images/burgers/sweet-spicy.jpg",
		CrossSectionImage: strPtr("/images/burgers/sweet-spicy-cross.jpg"),
		Category:          domain.CategoryBurger,
		Spicy:             true,
	},
	{
		ID:                "blue-smoke",
		Name:              "The Blue Smoke",
		Description:       "Blue cheese, crispy onions, BBQ glaze",
		Price:             13.49,
		Image:             "/images/burgers/blue-smoke.jpg",
		CrossSectionImage: strPtr("/images/burgers/blue-smoke-cross.jpg"),
		Category:          domain.CategoryBurger,
	},

	// SIDES
	{
		ID:          "fries-regular",
		Name:        "Regular Fries",
		Description: "Crispy golden fries seasoned to perfection",
		Price:       3.99,
		Image:       "/images/sides/fries.jpg",
		Category:    domain.CategorySides,
	},
	{
		ID:          "loaded-fries",
		Name:        "Loaded Fries",
		Description: "Fries topped with melted cheese and Ahkii sauce",
		Price:       5.49,
		Image:       "/images/sides/loaded-fries.jpg",
		Category:    domain.CategorySides,
	},
	{
		ID:          "sweet-potato-fries",
		Name:        "Sweet Potato Fries",
		Description: "Sweet potato fries with a crispy exterior",
		Price:       4.49,
		Image:       "/images/sides/sweet-potato-fries.jpg",
		Category:    domain.CategorySides,
		Vegetarian:  true,
		Vegan:       true,
	},
	{
		ID:          "onion-rings",
		Name:        "Onion Rings",
		Description: "Golden fried onion rings, crispy and delicious",
		Price:       4.49,
		Image:       "/images/sides/onion-rings.jpg",
		Category:    domain.CategorySides,
		Vegetarian:  true,
	},
	{
		ID:          "mozz-sticks",
		Name:        "Mozz Sticks (5 pcs)",
		Description: "Deep-fried mozzarella sticks with a crispy coating",
		Price:       5.49,
		Image:       "/images/sides/mozz-sticks.jpg",
		Category:    domain.CategorySides,
		Vegetarian:  true,
	},

	// DRINKS
	{
		ID:          "coca-cola",
		Name:        "Coca-Cola",
		Description: "Ice-cold Coca-Cola, 330ml",
		Price:       2.49,
		Image:       "/images/drinks/coca-cola.jpg",
		Category:    domain.CategoryDrinks,
		Vegetarian:  true,
		Vegan:       true,
	},
	{
		ID:          "sprite",
		Name:        "Sprite",
		Description: "Refreshing Sprite, 330ml",
		Price:       2.49,
		Image:       "/images/drinks/sprite.jpg",
		Category:    domain.CategoryDrinks,
		Vegetarian:  true,
		Vegan:       true,
	},
	{
		ID:          "fanta",
		Name:        "Fanta",
		Description: "Fanta assorted flavours, 330ml",
		Price:       2.49,
		Image:       "/images/drinks/fanta.jpg",
		Category:    domain.CategoryDrinks,
		Vegetarian:  true,
		Vegan:       true,
	},
	{
		ID:          "water-still",
		Name:        "Still Water",
		Description: "Pure still water, 500ml",
		Price:       1.99,
		Image:       "/images/drinks/water-still.jpg",
		Category:    domain.CategoryDrinks,
		Vegetarian:  true,
		Vegan:       true,
	},
	{
		ID:          "water-sparkling",
		Name:        "Sparkling Water",
		Description: "Refreshing sparkling water, 500ml",
		Price:       2.29,
		Image:       "/images/drinks/water-sparkling.jpg",
		Category:    domain.CategoryDrinks,
		Vegetarian:  true,
		Vegan:       true,
	},
}

type menuRepo struct {
	items []domain.MenuItem
	byID  map[string]int
}

func NewMenuRepository() domain.CatalogRepository {
	byID := make(map[string]int, len(menuItems))
	for i, item := range menuItems {
		byID[item.ID] = i
	}
	return &menuRepo{items: menuItems, byID: byID}
}

// FetchAll returns a copy so callers can never mutate the catalog.
func (r *menuRepo) FetchAll(ctx context.Context) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *menuRepo) FetchByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	out := make([]domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *menuRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item := r.items[i]
	return &item, nil
}

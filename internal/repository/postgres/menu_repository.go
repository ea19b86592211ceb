package postgres

import (
	"context"
	"errors"

	"ahkii-burger-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// menuRepo serves the catalog from Postgres for deployments that manage
// the menu in a database instead of the built-in list. It honors the same
// contract as the static repository: stable display order, ErrNotFound on
// absent ids.
type menuRepo struct {
	db *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) domain.CatalogRepository {
	return &menuRepo{db: db}
}

const menuColumns = `id, name, description, price, image, cross_section_image, transparent_image, category, spicy, vegetarian, vegan`

func (r *menuRepo) FetchAll(ctx context.Context) ([]domain.MenuItem, error) {
	// Fixed category order (burgers, sides, drinks), then insertion order
	// within a category. sort_order mirrors the position in the source list.
	query := `SELECT ` + menuColumns + ` FROM menu_items
              ORDER BY CASE category WHEN 'burger' THEN 0 WHEN 'sides' THEN 1 ELSE 2 END, sort_order`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *menuRepo) FetchByCategory(ctx context.Context, category domain.Category) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE category = $1 ORDER BY sort_order`
	rows, err := r.db.Query(ctx, query, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *menuRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`
	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Image,
		&item.CrossSectionImage, &item.TransparentImage, &item.Category,
		&item.Spicy, &item.Vegetarian, &item.Vegan,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func scanItems(rows pgx.Rows) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.Image,
			&item.CrossSectionImage, &item.TransparentImage, &item.Category,
			&item.Spicy, &item.Vegetarian, &item.Vegan,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

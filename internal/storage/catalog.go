package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/lib/pq"
)

const dishColumns = `d.id, d.name, COALESCE(d.description, ''), d.price, COALESCE(d.image, ''),
	COALESCE(d.category_id, 0), COALESCE(c.name, ''), d.tags, d.is_available, d.rating, d.stock,
	d.total_orders, d.created_at`

const dishFrom = `FROM dishes d LEFT JOIN categories c ON c.id = d.category_id`

var dishOrderBy = map[string]string{
	"popular":    "d.rating DESC, d.created_at DESC",
	"rating":     "d.rating DESC",
	"newest":     "d.created_at DESC",
	"price_low":  "d.price ASC",
	"price_high": "d.price DESC",
}

func scanDish(row rowScanner) (domain.Dish, error) {
	var d domain.Dish
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.Image, &d.CategoryID, &d.CategoryName,
		pq.Array(&d.Tags), &d.IsAvailable, &d.Rating, &d.Stock, &d.TotalOrders, &d.CreatedAt)
	return d, err
}

func (r *PostgresRepository) queryDishes(ctx context.Context, query string, args ...any) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) ListDishes(ctx context.Context, q domain.DishQuery) ([]domain.Dish, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if !q.IncludeUnavailable {
		where = append(where, "d.is_available", "COALESCE(c.is_active, TRUE)")
	}
	if q.CategoryID > 0 {
		where = append(where, "d.category_id = "+arg(q.CategoryID))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		p := arg("%" + s + "%")
		where = append(where, fmt.Sprintf("(d.name ILIKE %s OR d.description ILIKE %s)", p, p))
	}
	if len(q.Tags) > 0 {
		where = append(where, "d.tags @> "+arg(pq.Array(q.Tags)))
	}
	filter := ""
	if len(where) > 0 {
		filter = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) "+dishFrom+filter, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order, ok := dishOrderBy[q.Sort]
	if !ok {
		order = dishOrderBy["popular"]
	}
	query := "SELECT " + dishColumns + " " + dishFrom + filter + " ORDER BY " + order + ", d.id"
	query += " LIMIT " + arg(q.Limit) + " OFFSET " + arg(q.Offset)
	dishes, err := r.queryDishes(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return dishes, total, nil
}

func (r *PostgresRepository) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+dishColumns+" "+dishFrom+" WHERE d.id = $1", id)
	d, err := scanDish(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &d, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, is_active
		FROM categories
		WHERE is_active
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) DishesByIDs(ctx context.Context, ids []int) ([]domain.Dish, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.queryDishes(ctx, "SELECT "+dishColumns+" "+dishFrom+" WHERE d.id = ANY($1)", pq.Array(ids))
}

// DishesByTags returns available dishes sharing at least one tag with tags.
func (r *PostgresRepository) DishesByTags(ctx context.Context, tags []string, limit int) ([]domain.Dish, error) {
	return r.queryDishes(ctx, "SELECT "+dishColumns+" "+dishFrom+`
		WHERE d.is_available AND d.tags && $1
		ORDER BY d.rating DESC, d.created_at DESC
		LIMIT $2`, pq.Array(tags), limit)
}

func (r *PostgresRepository) PopularDishes(ctx context.Context, limit int) ([]domain.Dish, error) {
	return r.queryDishes(ctx, "SELECT "+dishColumns+" "+dishFrom+`
		WHERE d.is_available
		ORDER BY d.total_orders DESC, d.rating DESC
		LIMIT $1`, limit)
}

func (r *PostgresRepository) TopRatedDishes(ctx context.Context, limit int) ([]domain.Dish, error) {
	return r.queryDishes(ctx, "SELECT "+dishColumns+" "+dishFrom+`
		WHERE d.is_available
		ORDER BY d.rating DESC, d.created_at DESC
		LIMIT $1`, limit)
}

func (r *PostgresRepository) DishesInCategories(ctx context.Context, categoryIDs, excludeIDs []int, limit int) ([]domain.Dish, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	if excludeIDs == nil {
		excludeIDs = []int{}
	}
	return r.queryDishes(ctx, "SELECT "+dishColumns+" "+dishFrom+`
		WHERE d.is_available AND d.category_id = ANY($1) AND NOT (d.id = ANY($2))
		ORDER BY d.rating DESC, d.created_at DESC
		LIMIT $3`, pq.Array(categoryIDs), pq.Array(excludeIDs), limit)
}

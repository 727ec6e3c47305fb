package storage

import (
	"context"
	"testing"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dishRowColumns = []string{"id", "name", "description", "price", "image", "category_id", "category_name",
	"tags", "is_available", "rating", "stock", "total_orders", "created_at"}

func dishRows() *sqlmock.Rows {
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(dishRowColumns).
		AddRow(1, "Phở bò", "Nước dùng hầm xương", "55000.00", "pho.jpg", 2, "Phở", "{noodle,soup,hot}", true, 4.6, 20, 130, created).
		AddRow(4, "Bún chả", "", "50000.00", "", 3, "Bún", "{main}", true, 4.2, 15, 88, created)
}

func TestPostgresRepository_ListDishes(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM dishes d LEFT JOIN categories c ON c.id = d.category_id ` +
		`WHERE d.is_available AND COALESCE\(c.is_active, TRUE\) AND d.category_id = \$1 ` +
		`AND \(d.name ILIKE \$2 OR d.description ILIKE \$2\) AND d.tags @> \$3`).
		WithArgs(2, "%phở%", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`ORDER BY d.price ASC, d.id LIMIT \$4 OFFSET \$5`).
		WithArgs(2, "%phở%", sqlmock.AnyArg(), 10, 20).
		WillReturnRows(dishRows())

	dishes, total, err := repo.ListDishes(ctx, domain.DishQuery{
		CategoryID: 2, Search: " phở ", Tags: []string{"noodle"}, Sort: "price_low", Limit: 10, Offset: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, dishes, 2)
	assert.Equal(t, "Phở bò", dishes[0].Name)
	assert.Equal(t, "Phở", dishes[0].CategoryName)
	assert.Equal(t, []string{"noodle", "soup", "hot"}, dishes[0].Tags)
	assert.True(t, dishes[0].Price.Equal(decimal.NewFromInt(55_000)))
	assert.Equal(t, 130, dishes[0].TotalOrders)
}

func TestPostgresRepository_ListDishesIncludingUnavailable(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM dishes d LEFT JOIN categories c ON c.id = d.category_id$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY d.rating DESC, d.created_at DESC, d.id LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(dishRowColumns))

	dishes, total, err := repo.ListDishes(context.Background(), domain.DishQuery{IncludeUnavailable: true, Sort: "unknown", Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, dishes)
}

func TestPostgresRepository_GetDish(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`WHERE d.id = \$1`).WithArgs(1).WillReturnRows(dishRows())

		d, err := repo.GetDish(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, d.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`WHERE d.id = \$1`).WithArgs(99).WillReturnRows(sqlmock.NewRows(dishRowColumns))

		_, err := repo.GetDish(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresRepository_ListCategories(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT id, name, is_active FROM categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_active"}).
			AddRow(3, "Bún", true).
			AddRow(2, "Phở", true))

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 3, Name: "Bún", IsActive: true}, {ID: 2, Name: "Phở", IsActive: true}}, categories)
}

func TestPostgresRepository_DishLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("by_ids_empty_skips_query", func(t *testing.T) {
		repo, _ := newMockRepository(t)
		dishes, err := repo.DishesByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, dishes)
	})

	t.Run("by_ids", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`WHERE d.id = ANY\(\$1\)`).WithArgs(sqlmock.AnyArg()).WillReturnRows(dishRows())

		dishes, err := repo.DishesByIDs(ctx, []int{1, 4})
		require.NoError(t, err)
		assert.Len(t, dishes, 2)
	})

	t.Run("by_tags_overlap", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`d.tags && \$1`).WithArgs(sqlmock.AnyArg(), 5).WillReturnRows(dishRows())

		dishes, err := repo.DishesByTags(ctx, []string{"soup", "hotpot"}, 5)
		require.NoError(t, err)
		assert.Len(t, dishes, 2)
	})

	t.Run("popular", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`ORDER BY d.total_orders DESC, d.rating DESC`).WithArgs(5).WillReturnRows(dishRows())

		dishes, err := repo.PopularDishes(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 1, dishes[0].ID)
	})

	t.Run("top_rated", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`WHERE d.is_available ORDER BY d.rating DESC, d.created_at DESC LIMIT \$1`).WithArgs(3).
			WillReturnRows(sqlmock.NewRows(dishRowColumns))

		dishes, err := repo.TopRatedDishes(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, dishes)
	})

	t.Run("in_categories_without_categories", func(t *testing.T) {
		repo, _ := newMockRepository(t)
		dishes, err := repo.DishesInCategories(ctx, nil, []int{1}, 5)
		require.NoError(t, err)
		assert.Nil(t, dishes)
	})

	t.Run("in_categories", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`d.category_id = ANY\(\$1\) AND NOT \(d.id = ANY\(\$2\)\)`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 5).
			WillReturnRows(dishRows())

		dishes, err := repo.DishesInCategories(ctx, []int{2, 3}, nil, 5)
		require.NoError(t, err)
		assert.Len(t, dishes, 2)
	})
}

package seed

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []CategoryTemplate{
	{Name: "Phở & Bún", Dishes: []DishTemplate{
		{Name: "Phở bò tái", Tags: []string{"main", "noodle", "soup", "hot"}, MinPrice: 50, MaxPrice: 70},
		{Name: "Bún chả Hà Nội", Tags: []string{"main", "noodle", "grill"}, MinPrice: 45, MaxPrice: 65},
	}},
}

func newSeeder(t *testing.T, users int) (*Seeder, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	s := NewSeeder(db, faker.NewWithSeed(rand.NewSource(42)), users, nil)
	s.Catalog = testCatalog
	return s, mock
}

func TestSeeder_Run(t *testing.T) {
	s, mock := newSeeder(t, 2)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO categories").WithArgs("Phở & Bún").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec("INSERT INTO dishes").
		WithArgs("Phở bò tái", sqlmock.AnyArg(), sqlmock.AnyArg(), 4, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO dishes").
		WithArgs("Bún chả Hà Nội", sqlmock.AnyArg(), sqlmock.AnyArg(), 4, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	summary, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Summary{Categories: 1, Dishes: 2, Users: 1}, summary)
}

func TestSeeder_RunRollsBack(t *testing.T) {
	s, mock := newSeeder(t, 0)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO categories").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectExec("INSERT INTO dishes").WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	_, err := s.Run(context.Background())
	assert.ErrorContains(t, err, `insert dish "Phở bò tái"`)
}

func TestSeeder_Price(t *testing.T) {
	s := NewSeeder(nil, faker.NewWithSeed(rand.NewSource(7)), 0, nil)
	dish := DishTemplate{MinPrice: 20, MaxPrice: 35}

	for i := 0; i < 50; i++ {
		price := s.price(dish)
		assert.Zero(t, price%1000)
		assert.GreaterOrEqual(t, price, 20_000)
		assert.LessOrEqual(t, price, 35_000)
	}
}

func TestDefaultCatalog_CoversStrategyTags(t *testing.T) {
	seen := map[string]bool{}
	for _, category := range DefaultCatalog {
		for _, dish := range category.Dishes {
			assert.Less(t, dish.MinPrice, dish.MaxPrice, dish.Name)
			for _, tag := range dish.Tags {
				seen[tag] = true
			}
		}
	}

	for _, tag := range []string{"breakfast", "main", "snack", "late-night", "hot", "soup", "noodle", "hotpot", "cold", "drink", "salad", "ice", "popular", "dessert"} {
		assert.True(t, seen[tag], tag)
	}
}

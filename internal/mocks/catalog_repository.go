package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// CatalogRepository is a mock type for the CatalogRepository type
type CatalogRepository struct {
	mock.Mock
}

// ListDishes provides a mock function with given fields: ctx, q
func (_m *CatalogRepository) ListDishes(ctx context.Context, q domain.DishQuery) ([]domain.Dish, int, error) {
	ret := _m.Called(ctx, q)

	var r0 []domain.Dish
	if rf, ok := ret.Get(0).(func(context.Context, domain.DishQuery) []domain.Dish); ok {
		r0 = rf(ctx, q)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Dish)
		}
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, domain.DishQuery) int); ok {
		r1 = rf(ctx, q)
	} else {
		r1 = ret.Get(1).(int)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, domain.DishQuery) error); ok {
		r2 = rf(ctx, q)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// GetDish provides a mock function with given fields: ctx, id
func (_m *CatalogRepository) GetDish(ctx context.Context, id int) (*domain.Dish, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Dish
	if rf, ok := ret.Get(0).(func(context.Context, int) *domain.Dish); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Dish)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListCategories provides a mock function with given fields: ctx
func (_m *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Category
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Category); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Category)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DishesByIDs provides a mock function with given fields: ctx, ids
func (_m *CatalogRepository) DishesByIDs(ctx context.Context, ids []int) ([]domain.Dish, error) {
	ret := _m.Called(ctx, ids)

	var r0 []domain.Dish
	if rf, ok := ret.Get(0).(func(context.Context, []int) []domain.Dish); ok {
		r0 = rf(ctx, ids)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Dish)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []int) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DishesByTags provides a mock function with given fields: ctx, tags, limit
func (_m *CatalogRepository) DishesByTags(ctx context.Context, tags []string, limit int) ([]domain.Dish, error) {
	ret := _m.Called(ctx, tags, limit)

	var r0 []domain.Dish
	if rf, ok := ret.Get(0).(func(context.Context, []string, int) []domain.Dish); ok {
		r0 = rf(ctx, tags, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Dish)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []string, int) error); ok {
		r1 = rf(ctx, tags, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PopularDishes provides a mock function with given fields: ctx, limit
func (_m *CatalogRepository) PopularDishes(ctx context.Context, limit int) ([]domain.Dish, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.Dish
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.Dish); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Dish)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TopRatedDishes provides a mock function with given fields: ctx, limit
func (_m *CatalogRepository) TopRatedDishes(ctx context.Context, limit int) ([]domain.Dish, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.Dish
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.Dish); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Dish)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DishesInCategories provides a mock function with given fields: ctx, categoryIDs, excludeIDs, limit
func (_m *CatalogRepository) DishesInCategories(ctx context.Context, categoryIDs []int, excludeIDs []int, limit int) ([]domain.Dish, error) {
	ret := _m.Called(ctx, categoryIDs, excludeIDs, limit)

	var r0 []domain.Dish
	if rf, ok := ret.Get(0).(func(context.Context, []int, []int, int) []domain.Dish); ok {
		r0 = rf(ctx, categoryIDs, excludeIDs, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Dish)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []int, []int, int) error); ok {
		r1 = rf(ctx, categoryIDs, excludeIDs, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCatalogRepository creates a new instance of CatalogRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogRepository {
	mock := &CatalogRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

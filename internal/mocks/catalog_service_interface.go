package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// CatalogServiceInterface is a mock type for the CatalogServiceInterface type
type CatalogServiceInterface struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, q
func (_m *CatalogServiceInterface) List(ctx context.Context, q domain.DishQuery) ([]domain.Dish, int, error) {
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

// Get provides a mock function with given fields: ctx, id
func (_m *CatalogServiceInterface) Get(ctx context.Context, id int) (*domain.Dish, error) {
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

// Categories provides a mock function with given fields: ctx
func (_m *CatalogServiceInterface) Categories(ctx context.Context) ([]domain.Category, error) {
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

// TrendingToday provides a mock function with given fields: ctx, limit
func (_m *CatalogServiceInterface) TrendingToday(ctx context.Context, limit int) ([]domain.DishAnalytics, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.DishAnalytics
	if rf, ok := ret.Get(0).(func(context.Context, int) []domain.DishAnalytics); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.DishAnalytics)
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

// NewCatalogServiceInterface creates a new instance of CatalogServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceInterface {
	mock := &CatalogServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"context"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// PopularityCache is a mock type for the PopularityCache type
type PopularityCache struct {
	mock.Mock
}

// TopToday provides a mock function with given fields: ctx, day, limit
func (_m *PopularityCache) TopToday(ctx context.Context, day time.Time, limit int) ([]domain.DishAnalytics, error) {
	ret := _m.Called(ctx, day, limit)

	var r0 []domain.DishAnalytics
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, int) []domain.DishAnalytics); ok {
		r0 = rf(ctx, day, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.DishAnalytics)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time, int) error); ok {
		r1 = rf(ctx, day, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewPopularityCache creates a new instance of PopularityCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPopularityCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *PopularityCache {
	mock := &PopularityCache{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

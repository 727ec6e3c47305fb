package mocks

import (
	"context"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// PopularityRepository is a mock type for the PopularityRepository type
type PopularityRepository struct {
	mock.Mock
}

// TopOrderedOn provides a mock function with given fields: ctx, day, limit
func (_m *PopularityRepository) TopOrderedOn(ctx context.Context, day time.Time, limit int) ([]domain.DishAnalytics, error) {
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

// NewPopularityRepository creates a new instance of PopularityRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPopularityRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PopularityRepository {
	mock := &PopularityRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

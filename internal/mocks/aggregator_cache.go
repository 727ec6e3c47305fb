package mocks

import (
	"context"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// AggregatorCache is a mock type for the AggregatorCache type
type AggregatorCache struct {
	mock.Mock
}

// RecordOrderLines provides a mock function with given fields: ctx, orderID, day, lines
func (_m *AggregatorCache) RecordOrderLines(ctx context.Context, orderID int, day time.Time, lines []domain.EventLine) error {
	ret := _m.Called(ctx, orderID, day, lines)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, time.Time, []domain.EventLine) error); ok {
		r0 = rf(ctx, orderID, day, lines)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SetDishSnapshot provides a mock function with given fields: ctx, dishID, avgRating, reviewCount, at
func (_m *AggregatorCache) SetDishSnapshot(ctx context.Context, dishID int, avgRating float64, reviewCount int, at time.Time) error {
	ret := _m.Called(ctx, dishID, avgRating, reviewCount, at)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, float64, int, time.Time) error); ok {
		r0 = rf(ctx, dishID, avgRating, reviewCount, at)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAggregatorCache creates a new instance of AggregatorCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAggregatorCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *AggregatorCache {
	mock := &AggregatorCache{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

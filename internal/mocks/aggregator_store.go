package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// AggregatorStore is a mock type for the AggregatorStore type
type AggregatorStore struct {
	mock.Mock
}

// IncrementTotalOrders provides a mock function with given fields: ctx, orderID, lines
func (_m *AggregatorStore) IncrementTotalOrders(ctx context.Context, orderID int, lines []domain.EventLine) error {
	ret := _m.Called(ctx, orderID, lines)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, []domain.EventLine) error); ok {
		r0 = rf(ctx, orderID, lines)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DishRatingSummary provides a mock function with given fields: ctx, dishID
func (_m *AggregatorStore) DishRatingSummary(ctx context.Context, dishID int) (float64, int, error) {
	ret := _m.Called(ctx, dishID)

	var r0 float64
	if rf, ok := ret.Get(0).(func(context.Context, int) float64); ok {
		r0 = rf(ctx, dishID)
	} else {
		r0 = ret.Get(0).(float64)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, int) int); ok {
		r1 = rf(ctx, dishID)
	} else {
		r1 = ret.Get(1).(int)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, int) error); ok {
		r2 = rf(ctx, dishID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewAggregatorStore creates a new instance of AggregatorStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAggregatorStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *AggregatorStore {
	mock := &AggregatorStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

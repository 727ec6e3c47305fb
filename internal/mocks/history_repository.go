package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// HistoryRepository is a mock type for the HistoryRepository type
type HistoryRepository struct {
	mock.Mock
}

// RecentOrders provides a mock function with given fields: ctx, userID, limit
func (_m *HistoryRepository) RecentOrders(ctx context.Context, userID int, limit int) ([]domain.Order, error) {
	ret := _m.Called(ctx, userID, limit)

	var r0 []domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []domain.Order); ok {
		r0 = rf(ctx, userID, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Order)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, userID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CoPurchasedDishIDs provides a mock function with given fields: ctx, userID, seedDishIDs, excludeIDs, limit
func (_m *HistoryRepository) CoPurchasedDishIDs(ctx context.Context, userID int, seedDishIDs []int, excludeIDs []int, limit int) ([]int, error) {
	ret := _m.Called(ctx, userID, seedDishIDs, excludeIDs, limit)

	var r0 []int
	if rf, ok := ret.Get(0).(func(context.Context, int, []int, []int, int) []int); ok {
		r0 = rf(ctx, userID, seedDishIDs, excludeIDs, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, []int, []int, int) error); ok {
		r1 = rf(ctx, userID, seedDishIDs, excludeIDs, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewHistoryRepository creates a new instance of HistoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHistoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *HistoryRepository {
	mock := &HistoryRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

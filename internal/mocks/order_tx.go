package mocks

import (
	"context"
	"time"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	"github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"
)

// OrderTx is a mock type for the OrderTx type
type OrderTx struct {
	mock.Mock
}

// InsertOrder provides a mock function with given fields: ctx, order
func (_m *OrderTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Order) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// LockOrder provides a mock function with given fields: ctx, id
func (_m *OrderTx) LockOrder(ctx context.Context, id int) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, int) *domain.Order); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Order)
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

// UpdateOrderStatus provides a mock function with given fields: ctx, id, status
func (_m *OrderTx) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	ret := _m.Called(ctx, id, status)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, domain.OrderStatus) error); ok {
		r0 = rf(ctx, id, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MarkOrderPaid provides a mock function with given fields: ctx, id
func (_m *OrderTx) MarkOrderPaid(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// AddLifetimeSpend provides a mock function with given fields: ctx, userID, amount
func (_m *OrderTx) AddLifetimeSpend(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Membership, error) {
	ret := _m.Called(ctx, userID, amount)

	var r0 *domain.Membership
	if rf, ok := ret.Get(0).(func(context.Context, int, decimal.Decimal) *domain.Membership); ok {
		r0 = rf(ctx, userID, amount)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Membership)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, decimal.Decimal) error); ok {
		r1 = rf(ctx, userID, amount)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateTier provides a mock function with given fields: ctx, userID, tier, memberSince
func (_m *OrderTx) UpdateTier(ctx context.Context, userID int, tier domain.Tier, memberSince time.Time) error {
	ret := _m.Called(ctx, userID, tier, memberSince)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, domain.Tier, time.Time) error); ok {
		r0 = rf(ctx, userID, tier, memberSince)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewOrderTx creates a new instance of OrderTx. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderTx {
	mock := &OrderTx{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

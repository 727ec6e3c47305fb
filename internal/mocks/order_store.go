package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// OrderStore is a mock type for the OrderStore type
type OrderStore struct {
	mock.Mock
}

// InTx provides a mock function with given fields: ctx, fn
func (_m *OrderStore) InTx(ctx context.Context, fn func(service.OrderTx) error) error {
	ret := _m.Called(ctx, fn)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(service.OrderTx) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetOrder provides a mock function with given fields: ctx, id
func (_m *OrderStore) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
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

// ListUserOrders provides a mock function with given fields: ctx, userID, status, limit, offset
func (_m *OrderStore) ListUserOrders(ctx context.Context, userID int, status domain.OrderStatus, limit int, offset int) ([]domain.Order, int, error) {
	ret := _m.Called(ctx, userID, status, limit, offset)

	var r0 []domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, int, domain.OrderStatus, int, int) []domain.Order); ok {
		r0 = rf(ctx, userID, status, limit, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Order)
		}
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, int, domain.OrderStatus, int, int) int); ok {
		r1 = rf(ctx, userID, status, limit, offset)
	} else {
		r1 = ret.Get(1).(int)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, int, domain.OrderStatus, int, int) error); ok {
		r2 = rf(ctx, userID, status, limit, offset)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// SaveQRCode provides a mock function with given fields: ctx, orderID, qr
func (_m *OrderStore) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	ret := _m.Called(ctx, orderID, qr)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, []byte) error); ok {
		r0 = rf(ctx, orderID, qr)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetQRCode provides a mock function with given fields: ctx, orderID
func (_m *OrderStore) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, int) []byte); ok {
		r0 = rf(ctx, orderID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrderStore creates a new instance of OrderStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderStore {
	mock := &OrderStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

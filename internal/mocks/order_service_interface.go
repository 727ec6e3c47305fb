package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// OrderServiceInterface is a mock type for the OrderServiceInterface type
type OrderServiceInterface struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, userID, req
func (_m *OrderServiceInterface) Create(ctx context.Context, userID int, req domain.CreateOrderRequest) (*domain.CreateOrderResult, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *domain.CreateOrderResult
	if rf, ok := ret.Get(0).(func(context.Context, int, domain.CreateOrderRequest) *domain.CreateOrderResult); ok {
		r0 = rf(ctx, userID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.CreateOrderResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, domain.CreateOrderRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateStatus provides a mock function with given fields: ctx, orderID, status
func (_m *OrderServiceInterface) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) (*domain.StatusUpdateResult, error) {
	ret := _m.Called(ctx, orderID, status)

	var r0 *domain.StatusUpdateResult
	if rf, ok := ret.Get(0).(func(context.Context, int, domain.OrderStatus) *domain.StatusUpdateResult); ok {
		r0 = rf(ctx, orderID, status)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.StatusUpdateResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, domain.OrderStatus) error); ok {
		r1 = rf(ctx, orderID, status)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, userID, orderID
func (_m *OrderServiceInterface) Get(ctx context.Context, userID int, orderID int) (*service.OrderView, error) {
	ret := _m.Called(ctx, userID, orderID)

	var r0 *service.OrderView
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *service.OrderView); ok {
		r0 = rf(ctx, userID, orderID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.OrderView)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, userID, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListMine provides a mock function with given fields: ctx, userID, status, page, pageSize
func (_m *OrderServiceInterface) ListMine(ctx context.Context, userID int, status domain.OrderStatus, page int, pageSize int) (*service.OrderPage, error) {
	ret := _m.Called(ctx, userID, status, page, pageSize)

	var r0 *service.OrderPage
	if rf, ok := ret.Get(0).(func(context.Context, int, domain.OrderStatus, int, int) *service.OrderPage); ok {
		r0 = rf(ctx, userID, status, page, pageSize)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.OrderPage)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, domain.OrderStatus, int, int) error); ok {
		r1 = rf(ctx, userID, status, page, pageSize)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// QRCode provides a mock function with given fields: ctx, userID, orderID
func (_m *OrderServiceInterface) QRCode(ctx context.Context, userID int, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, userID, orderID)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []byte); ok {
		r0 = rf(ctx, userID, orderID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, userID, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrderServiceInterface creates a new instance of OrderServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	mock := &OrderServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

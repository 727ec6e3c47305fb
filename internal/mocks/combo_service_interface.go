package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// ComboServiceInterface is a mock type for the ComboServiceInterface type
type ComboServiceInterface struct {
	mock.Mock
}

// Quote provides a mock function with given fields: ctx, req
func (_m *ComboServiceInterface) Quote(ctx context.Context, req service.ComboRequest) (*domain.ComboBundle, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.ComboBundle
	if rf, ok := ret.Get(0).(func(context.Context, service.ComboRequest) *domain.ComboBundle); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.ComboBundle)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, service.ComboRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Suggestions provides a mock function with given fields: ctx
func (_m *ComboServiceInterface) Suggestions(ctx context.Context) (*service.ComboSuggestions, error) {
	ret := _m.Called(ctx)

	var r0 *service.ComboSuggestions
	if rf, ok := ret.Get(0).(func(context.Context) *service.ComboSuggestions); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.ComboSuggestions)
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

// NewComboServiceInterface creates a new instance of ComboServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewComboServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ComboServiceInterface {
	mock := &ComboServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

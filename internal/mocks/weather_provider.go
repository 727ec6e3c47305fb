package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// WeatherProvider is a mock type for the WeatherProvider type
type WeatherProvider struct {
	mock.Mock
}

// Current provides a mock function with given fields: ctx
func (_m *WeatherProvider) Current(ctx context.Context) (*domain.Weather, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Weather
	if rf, ok := ret.Get(0).(func(context.Context) *domain.Weather); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Weather)
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

// NewWeatherProvider creates a new instance of WeatherProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWeatherProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherProvider {
	mock := &WeatherProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

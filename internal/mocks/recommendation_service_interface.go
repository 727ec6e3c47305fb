package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"
	"github.com/hoaithan123/du-an-smart-food/internal/service"

	mock "github.com/stretchr/testify/mock"
)

// RecommendationServiceInterface is a mock type for the RecommendationServiceInterface type
type RecommendationServiceInterface struct {
	mock.Mock
}

// TimeBased provides a mock function with given fields: ctx, limit, at
func (_m *RecommendationServiceInterface) TimeBased(ctx context.Context, limit int, at service.HourRequest) (*service.TimeBasedResult, error) {
	ret := _m.Called(ctx, limit, at)

	var r0 *service.TimeBasedResult
	if rf, ok := ret.Get(0).(func(context.Context, int, service.HourRequest) *service.TimeBasedResult); ok {
		r0 = rf(ctx, limit, at)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.TimeBasedResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, service.HourRequest) error); ok {
		r1 = rf(ctx, limit, at)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Personal provides a mock function with given fields: ctx, userID, limit
func (_m *RecommendationServiceInterface) Personal(ctx context.Context, userID int, limit int) (*service.PersonalResult, error) {
	ret := _m.Called(ctx, userID, limit)

	var r0 *service.PersonalResult
	if rf, ok := ret.Get(0).(func(context.Context, int, int) *service.PersonalResult); ok {
		r0 = rf(ctx, userID, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.PersonalResult)
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

// WeatherBased provides a mock function with given fields: ctx, limit
func (_m *RecommendationServiceInterface) WeatherBased(ctx context.Context, limit int) (*service.WeatherResult, error) {
	ret := _m.Called(ctx, limit)

	var r0 *service.WeatherResult
	if rf, ok := ret.Get(0).(func(context.Context, int) *service.WeatherResult); ok {
		r0 = rf(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.WeatherResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Smart provides a mock function with given fields: ctx, userID, limit, at
func (_m *RecommendationServiceInterface) Smart(ctx context.Context, userID int, limit int, at service.HourRequest) (*service.SmartResult, error) {
	ret := _m.Called(ctx, userID, limit, at)

	var r0 *service.SmartResult
	if rf, ok := ret.Get(0).(func(context.Context, int, int, service.HourRequest) *service.SmartResult); ok {
		r0 = rf(ctx, userID, limit, at)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.SmartResult)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int, service.HourRequest) error); ok {
		r1 = rf(ctx, userID, limit, at)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RecordFeedback provides a mock function with given fields: ctx, fb
func (_m *RecommendationServiceInterface) RecordFeedback(ctx context.Context, fb domain.Feedback) error {
	ret := _m.Called(ctx, fb)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Feedback) error); ok {
		r0 = rf(ctx, fb)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewRecommendationServiceInterface creates a new instance of RecommendationServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRecommendationServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RecommendationServiceInterface {
	mock := &RecommendationServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

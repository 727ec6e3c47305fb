package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// EventPublisher is a mock type for the EventPublisher type
type EventPublisher struct {
	mock.Mock
}

// PublishOrderEvent provides a mock function with given fields: ctx, msg
func (_m *EventPublisher) PublishOrderEvent(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.KafkaMessage) error); ok {
		r0 = rf(ctx, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// PublishReviewEvent provides a mock function with given fields: ctx, msg
func (_m *EventPublisher) PublishReviewEvent(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.KafkaMessage) error); ok {
		r0 = rf(ctx, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewEventPublisher creates a new instance of EventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	mock := &EventPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

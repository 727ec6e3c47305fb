package mocks

import (
	"context"

	"github.com/segmentio/kafka-go"
	mock "github.com/stretchr/testify/mock"
)

// MessageWriter is a mock type for the MessageWriter type
type MessageWriter struct {
	mock.Mock
}

// WriteMessages provides a mock function with given fields: ctx, msgs
func (_m *MessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	ret := _m.Called(ctx, msgs)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ...kafka.Message) error); ok {
		r0 = rf(ctx, msgs...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMessageWriter creates a new instance of MessageWriter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMessageWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageWriter {
	mock := &MessageWriter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

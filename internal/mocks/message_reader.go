package mocks

import (
	"context"

	"github.com/segmentio/kafka-go"
	mock "github.com/stretchr/testify/mock"
)

// MessageReader is a mock type for the MessageReader type
type MessageReader struct {
	mock.Mock
}

// FetchMessage provides a mock function with given fields: ctx
func (_m *MessageReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)

	var r0 kafka.Message
	if rf, ok := ret.Get(0).(func(context.Context) kafka.Message); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(kafka.Message)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CommitMessages provides a mock function with given fields: ctx, msgs
func (_m *MessageReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	ret := _m.Called(ctx, msgs)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, ...kafka.Message) error); ok {
		r0 = rf(ctx, msgs...)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMessageReader creates a new instance of MessageReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMessageReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageReader {
	mock := &MessageReader{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

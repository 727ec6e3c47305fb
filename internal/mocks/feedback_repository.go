package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// FeedbackRepository is a mock type for the FeedbackRepository type
type FeedbackRepository struct {
	mock.Mock
}

// SaveFeedback provides a mock function with given fields: ctx, fb
func (_m *FeedbackRepository) SaveFeedback(ctx context.Context, fb domain.Feedback) error {
	ret := _m.Called(ctx, fb)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Feedback) error); ok {
		r0 = rf(ctx, fb)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewFeedbackRepository creates a new instance of FeedbackRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewFeedbackRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *FeedbackRepository {
	mock := &FeedbackRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

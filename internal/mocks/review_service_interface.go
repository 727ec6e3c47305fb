package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ReviewServiceInterface is a mock type for the ReviewServiceInterface type
type ReviewServiceInterface struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, review, explicitOrder
func (_m *ReviewServiceInterface) Create(ctx context.Context, review *domain.Review, explicitOrder bool) error {
	ret := _m.Called(ctx, review, explicitOrder)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Review, bool) error); ok {
		r0 = rf(ctx, review, explicitOrder)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListDishReviews provides a mock function with given fields: ctx, dishID, limit, offset
func (_m *ReviewServiceInterface) ListDishReviews(ctx context.Context, dishID int, limit int, offset int) ([]domain.Review, int, error) {
	ret := _m.Called(ctx, dishID, limit, offset)

	var r0 []domain.Review
	if rf, ok := ret.Get(0).(func(context.Context, int, int, int) []domain.Review); ok {
		r0 = rf(ctx, dishID, limit, offset)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Review)
		}
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, int, int, int) int); ok {
		r1 = rf(ctx, dishID, limit, offset)
	} else {
		r1 = ret.Get(1).(int)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, int, int, int) error); ok {
		r2 = rf(ctx, dishID, limit, offset)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewReviewServiceInterface creates a new instance of ReviewServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReviewServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewServiceInterface {
	mock := &ReviewServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

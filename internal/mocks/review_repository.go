package mocks

import (
	"context"

	"github.com/hoaithan123/du-an-smart-food/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ReviewRepository is a mock type for the ReviewRepository type
type ReviewRepository struct {
	mock.Mock
}

// HasDeliveredPurchase provides a mock function with given fields: ctx, userID, dishID, orderID
func (_m *ReviewRepository) HasDeliveredPurchase(ctx context.Context, userID int, dishID int, orderID int) (bool, error) {
	ret := _m.Called(ctx, userID, dishID, orderID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int, int, int) bool); ok {
		r0 = rf(ctx, userID, dishID, orderID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int, int) error); ok {
		r1 = rf(ctx, userID, dishID, orderID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeliveredOrderIDs provides a mock function with given fields: ctx, userID, dishID
func (_m *ReviewRepository) DeliveredOrderIDs(ctx context.Context, userID int, dishID int) ([]int, error) {
	ret := _m.Called(ctx, userID, dishID)

	var r0 []int
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []int); ok {
		r0 = rf(ctx, userID, dishID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, userID, dishID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReviewedOrderIDs provides a mock function with given fields: ctx, userID, dishID
func (_m *ReviewRepository) ReviewedOrderIDs(ctx context.Context, userID int, dishID int) ([]int, error) {
	ret := _m.Called(ctx, userID, dishID)

	var r0 []int
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []int); ok {
		r0 = rf(ctx, userID, dishID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]int)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, userID, dishID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// InsertReview provides a mock function with given fields: ctx, review
func (_m *ReviewRepository) InsertReview(ctx context.Context, review *domain.Review) (float64, error) {
	ret := _m.Called(ctx, review)

	var r0 float64
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Review) float64); ok {
		r0 = rf(ctx, review)
	} else {
		r0 = ret.Get(0).(float64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *domain.Review) error); ok {
		r1 = rf(ctx, review)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListDishReviews provides a mock function with given fields: ctx, dishID, limit, offset
func (_m *ReviewRepository) ListDishReviews(ctx context.Context, dishID int, limit int, offset int) ([]domain.Review, int, error) {
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

// NewReviewRepository creates a new instance of ReviewRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReviewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReviewRepository {
	mock := &ReviewRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

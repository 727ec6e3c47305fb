package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// QRGenerator is a mock type for the QRGenerator type
type QRGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: orderNumber
func (_m *QRGenerator) Generate(orderNumber string) ([]byte, error) {
	ret := _m.Called(orderNumber)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(string) []byte); ok {
		r0 = rf(orderNumber)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(orderNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewQRGenerator creates a new instance of QRGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	mock := &QRGenerator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockConversionServiceForTest creates a ConversionService mock bound to t.
func NewMockConversionServiceForTest(t *testing.T) *MockConversionService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockConversionService(ctrl)
}

// NewMockExchangeRateServiceForTest creates an ExchangeRateService mock bound to t.
func NewMockExchangeRateServiceForTest(t *testing.T) *MockExchangeRateService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockExchangeRateService(ctrl)
}

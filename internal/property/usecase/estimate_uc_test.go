package usecase

import (
	"context"
	"testing"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestEstimateUsecase_Estimate(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	features := domain.EstimateFeatures{Area: 90, Bedrooms: 2, Bathrooms: 1, PropertyType: "Apartment"}

	t.Run("Success", func(t *testing.T) {
		mockEstimator := new(MockPriceEstimator)
		uc := NewEstimateUsecase(mockEstimator, logger)

		mockEstimator.On("Predict", mock.Anything, features).Return(450000, nil).Once()

		price, err := uc.Estimate(ctx, features)

		assert.NoError(t, err)
		assert.Equal(t, 450000, price)
		mockEstimator.AssertExpectations(t)
	})

	t.Run("GatewayFailure", func(t *testing.T) {
		mockEstimator := new(MockPriceEstimator)
		uc := NewEstimateUsecase(mockEstimator, logger)

		mockEstimator.On("Predict", mock.Anything, features).Return(0, domain.ErrEstimationFailed).Once()

		_, err := uc.Estimate(ctx, features)

		assert.ErrorIs(t, err, domain.ErrEstimationFailed)
	})
}

package usecase

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// PriceEstimator is the external prediction gateway.
type PriceEstimator interface {
	Predict(ctx context.Context, features domain.EstimateFeatures) (int, error)
}

type EstimateUsecase struct {
	estimator PriceEstimator
	logger    *zap.Logger
}

func NewEstimateUsecase(estimator PriceEstimator, logger *zap.Logger) *EstimateUsecase {
	return &EstimateUsecase{estimator: estimator, logger: logger}
}

// Estimate asks the prediction service for a market price given the listing
// features.
func (u *EstimateUsecase) Estimate(ctx context.Context, features domain.EstimateFeatures) (int, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "EstimateUsecase.Estimate")
	defer span.End()

	price, err := u.estimator.Predict(ctx, features)
	if err != nil {
		u.logger.Error("price estimation failed", zap.Error(err))
		return 0, err
	}

	u.logger.Debug("price estimated", zap.Int("predicted_price", price))
	return price, nil
}

package app

import (
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/usecase"
	"go.uber.org/zap"
)

// App is the composition root handed to whatever transport fronts the
// service.
type App struct {
	Properties *usecase.PropertyUsecase
	Favorites  *usecase.FavoriteUsecase
	Images     *usecase.ImageUsecase
	Estimates  *usecase.EstimateUsecase
}

func (a *App) LogReady(logger *zap.Logger) {
	logger.Info("application wired",
		zap.Bool("properties", a.Properties != nil),
		zap.Bool("favorites", a.Favorites != nil),
		zap.Bool("images", a.Images != nil),
		zap.Bool("estimates", a.Estimates != nil))
}

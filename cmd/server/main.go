package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/estimation"
	natsadapter "github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/messaging/nats"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/repository/cache"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/repository/mongodb"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/storage/s3"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/app"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/config"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/mailer"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/tracer"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/usecase"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := tracer.Init(ctx, cfg.OTLPEndpoint)
	if err != nil {
		zapLogger.Fatal("failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			zapLogger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	mongoCtx, mongoCancel := context.WithTimeout(ctx, 10*time.Second)
	defer mongoCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zapLogger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		zapLogger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zapLogger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}()
	zapLogger.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))

	propertyRepo := mongodb.NewPropertyRepository(mongoClient, cfg.MongoDB, zapLogger)
	favoriteRepo := mongodb.NewFavoriteRepository(mongoClient, cfg.MongoDB, zapLogger)
	userRepo := mongodb.NewUserRepository(mongoClient, cfg.MongoDB)
	if err := favoriteRepo.EnsureIndexes(ctx); err != nil {
		zapLogger.Fatal("failed to ensure favorite indexes", zap.Error(err))
	}

	propertyCache, err := cache.NewPropertyCache(cfg.RedisAddr)
	if err != nil {
		zapLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
		propertyCache = nil
	}

	fileStorage, err := s3.NewS3Storage(
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioBucket, cfg.MinioUseSSL, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize file storage", zap.Error(err))
	}

	publisher, err := natsadapter.NewPublisher(cfg.NATSURL, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	var ownerMailer usecase.Mailer
	if cfg.SMTPEmail != "" {
		ownerMailer = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
	} else {
		zapLogger.Warn("SMTP_EMAIL not set, owner notifications disabled")
	}

	estimator := estimation.NewClient(cfg.PredictorURL, zapLogger)

	var cachePort usecase.PropertyCache
	if propertyCache != nil {
		cachePort = propertyCache
	}

	application := &app.App{
		Properties: usecase.NewPropertyUsecase(
			propertyRepo, userRepo, fileStorage, cachePort, publisher, ownerMailer, zapLogger),
		Favorites: usecase.NewFavoriteUsecase(favoriteRepo, propertyRepo, zapLogger),
		Images:    usecase.NewImageUsecase(propertyRepo, fileStorage, cachePort, zapLogger),
		Estimates: usecase.NewEstimateUsecase(estimator, zapLogger),
	}
	application.LogReady(zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down property service")
	cancel()
}

package usecase

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// ImageUsecase attaches additional images to an existing listing. The cache
// is optional; a nil value disables invalidation.
type ImageUsecase struct {
	repo    domain.PropertyRepository
	storage domain.FileStorage
	cache   PropertyCache
	logger  *zap.Logger
}

func NewImageUsecase(repo domain.PropertyRepository, storage domain.FileStorage, cache PropertyCache, logger *zap.Logger) *ImageUsecase {
	return &ImageUsecase{repo: repo, storage: storage, cache: cache, logger: logger}
}

// AttachImages uploads the files and records them against the property.
// Uploaded blobs are removed again if the database write fails.
func (u *ImageUsecase) AttachImages(ctx context.Context, propertyID string, files []domain.ImageUpload) ([]string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ImageUsecase.AttachImages")
	defer span.End()

	if len(files) == 0 {
		return nil, domain.ErrEmptyImageUpload
	}
	if _, err := u.repo.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}

	images := make([]domain.Image, 0, len(files))
	for _, file := range files {
		if len(file.Data) == 0 {
			u.removeBlobs(ctx, images)
			return nil, domain.ErrEmptyImageUpload
		}
		url, err := u.storage.Upload(ctx, file.FileName, file.ContentType, file.Data)
		if err != nil {
			u.removeBlobs(ctx, images)
			return nil, err
		}
		images = append(images, domain.Image{
			URL:         url,
			FileName:    file.FileName,
			FileSize:    int64(len(file.Data)),
			ContentType: file.ContentType,
		})
	}

	if err := u.repo.AddImages(ctx, propertyID, images); err != nil {
		u.removeBlobs(ctx, images)
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, propertyID); err != nil {
			u.logger.Warn("failed to invalidate property cache",
				zap.String("property_id", propertyID), zap.Error(err))
		}
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	u.logger.Info("images attached",
		zap.String("property_id", propertyID), zap.Int("count", len(urls)))
	return urls, nil
}

func (u *ImageUsecase) removeBlobs(ctx context.Context, images []domain.Image) {
	for _, img := range images {
		if err := u.storage.Delete(ctx, img.URL); err != nil {
			u.logger.Warn("failed to delete image blob", zap.String("url", img.URL), zap.Error(err))
		}
	}
}

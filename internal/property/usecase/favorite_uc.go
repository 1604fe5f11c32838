package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// FavoriteUsecase manages per-user favorite lists.
type FavoriteUsecase struct {
	favorites  domain.FavoriteRepository
	properties domain.PropertyRepository
	logger     *zap.Logger
}

func NewFavoriteUsecase(favorites domain.FavoriteRepository, properties domain.PropertyRepository, logger *zap.Logger) *FavoriteUsecase {
	return &FavoriteUsecase{favorites: favorites, properties: properties, logger: logger}
}

// Add marks a property as favorite. Returns false without error when the pair
// already exists, so repeated calls are harmless.
func (u *FavoriteUsecase) Add(ctx context.Context, userID, propertyID string) (bool, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "FavoriteUsecase.Add")
	defer span.End()

	if userID == "" || propertyID == "" {
		return false, domain.ErrInvalidPropertyData
	}

	if _, err := u.properties.FindByID(ctx, propertyID); err != nil {
		return false, err
	}

	err := u.favorites.Add(ctx, &domain.Favorite{UserID: userID, PropertyID: propertyID})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateFavorite) {
			return false, nil
		}
		return false, err
	}

	u.logger.Debug("favorite added",
		zap.String("user_id", userID), zap.String("property_id", propertyID))
	return true, nil
}

// Remove unmarks a favorite. Returns false without error when the pair was
// not present.
func (u *FavoriteUsecase) Remove(ctx context.Context, userID, propertyID string) (bool, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "FavoriteUsecase.Remove")
	defer span.End()

	err := u.favorites.Remove(ctx, userID, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListForUser returns the user's favorites newest first. Favorites whose
// property has since been deleted are skipped.
func (u *FavoriteUsecase) ListForUser(ctx context.Context, userID string) ([]FavoriteView, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "FavoriteUsecase.ListForUser")
	defer span.End()

	if userID == "" {
		return []FavoriteView{}, nil
	}

	favorites, err := u.favorites.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]FavoriteView, 0, len(favorites))
	for _, fav := range favorites {
		property, err := u.properties.FindByID(ctx, fav.PropertyID)
		if err != nil {
			if errors.Is(err, domain.ErrPropertyNotFound) {
				u.logger.Warn("favorite points at missing property",
					zap.String("user_id", userID), zap.String("property_id", fav.PropertyID))
				continue
			}
			return nil, err
		}
		views = append(views, toFavoriteView(fav, property))
	}
	return views, nil
}

func toFavoriteView(fav *domain.Favorite, p *domain.Property) FavoriteView {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.AddressLine1, p.City, p.Governorate} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return FavoriteView{
		UserID:         fav.UserID,
		PropertyID:     fav.PropertyID,
		Title:          favoriteTitle(p.Title),
		Address:        strings.Join(parts, ", "),
		Price:          p.Price,
		FormattedPrice: formatPrice(p.Price),
		Area:           p.Size,
		MainImageURL:   mainImageURL(p, defaultFavoriteImage),
	}
}

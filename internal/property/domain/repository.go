package domain

import "context"

// PropertyRepository persists properties and their dependent images. Reads
// return properties with the image collection attached; Create commits the
// property and all images as a single unit or not at all.
type PropertyRepository interface {
	Create(ctx context.Context, property *Property, images []Image) error
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Property, error)
	FindByFilter(ctx context.Context, filter Filter) ([]*Property, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]*Property, error)
	FindByRegion(ctx context.Context, governorate string) ([]*Property, error)
	FindRecent(ctx context.Context, limit int64) ([]*Property, error)
	AddImages(ctx context.Context, propertyID string, images []Image) error
	RemoveImages(ctx context.Context, propertyID string, urls []string) error
}

type FavoriteRepository interface {
	// Add returns ErrDuplicateFavorite when the pair already exists.
	Add(ctx context.Context, favorite *Favorite) error
	// Remove returns ErrFavoriteNotFound when there is nothing to remove.
	Remove(ctx context.Context, userID, propertyID string) error
	FindByUserID(ctx context.Context, userID string) ([]*Favorite, error)
}

type UserRepository interface {
	GetEmailByID(ctx context.Context, userID string) (string, error)
	GetProfileByID(ctx context.Context, userID string) (*UserProfile, error)
}

// FileStorage is the blob store behind image uploads. Delete is idempotent:
// removing an already-absent object is not an error.
type FileStorage interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

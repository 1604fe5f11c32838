package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const tracerName = "property-usecase"

const defaultNearbyLimit = 20

// PropertyCache is the read-through cache for single property lookups.
// Get returns (nil, nil) on a miss.
type PropertyCache interface {
	Get(ctx context.Context, id string) (*domain.Property, error)
	Set(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher emits catalog change events for downstream services.
type EventPublisher interface {
	PublishPropertyCreated(property *domain.Property) error
	PublishPropertyUpdated(property *domain.Property) error
	PublishPropertyDeleted(propertyID string) error
}

// Mailer notifies owners about their listings.
type Mailer interface {
	SendPropertyPublishedEmail(to, propertyTitle string) error
}

// PropertyUsecase implements the catalog operations. Cache, publisher and
// mailer are optional collaborators; a nil value disables that concern.
type PropertyUsecase struct {
	repo      domain.PropertyRepository
	users     domain.UserRepository
	storage   domain.FileStorage
	cache     PropertyCache
	publisher EventPublisher
	mailer    Mailer
	logger    *zap.Logger
}

func NewPropertyUsecase(
	repo domain.PropertyRepository,
	users domain.UserRepository,
	storage domain.FileStorage,
	cache PropertyCache,
	publisher EventPublisher,
	mailer Mailer,
	logger *zap.Logger,
) *PropertyUsecase {
	return &PropertyUsecase{
		repo:      repo,
		users:     users,
		storage:   storage,
		cache:     cache,
		publisher: publisher,
		mailer:    mailer,
		logger:    logger,
	}
}

// CreateInput carries everything needed to publish a new listing.
type CreateInput struct {
	Title            string
	Description      string
	Price            float64
	AddressLine1     string
	AddressLine2     string
	City             string
	Governorate      string
	PostalCode       string
	Bedrooms         int
	Bathrooms        int
	Size             int
	Floor            int
	Type             string
	FurnishingStatus string
	Amenities        []string
	NearbyFacility   string
	ContactName      string
	ContactPhone     string
	Images           []domain.ImageUpload
}

// UpdateInput carries the mutable listing fields plus the image delta.
type UpdateInput struct {
	Title            string
	Description      string
	Price            float64
	AddressLine1     string
	AddressLine2     string
	City             string
	Governorate      string
	PostalCode       string
	Bedrooms         int
	Bathrooms        int
	Size             int
	Floor            int
	Type             string
	FurnishingStatus string
	Amenities        []string
	NearbyFacility   string
	ContactName      string
	ContactPhone     string
	RemoveImageURLs  []string
	NewImages        []domain.ImageUpload
}

func validateCreateInput(in *CreateInput) error {
	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidPropertyData)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrInvalidPropertyData)
	case in.Price <= 0:
		return fmt.Errorf("%w: price must be positive", domain.ErrInvalidPropertyData)
	case in.AddressLine1 == "":
		return fmt.Errorf("%w: address line is required", domain.ErrInvalidPropertyData)
	case in.City == "":
		return fmt.Errorf("%w: city is required", domain.ErrInvalidPropertyData)
	case in.ContactName == "":
		return fmt.Errorf("%w: contact name is required", domain.ErrInvalidPropertyData)
	case in.ContactPhone == "":
		return fmt.Errorf("%w: contact phone is required", domain.ErrInvalidPropertyData)
	case in.Bedrooms < 0 || in.Bathrooms < 0 || in.Size < 0 || in.Floor < 0:
		return fmt.Errorf("%w: counts and size must not be negative", domain.ErrInvalidPropertyData)
	}
	if in.Type != "" && !domain.BuildingType(in.Type).Valid() {
		return fmt.Errorf("%w: unknown building type %q", domain.ErrInvalidPropertyData, in.Type)
	}
	return nil
}

// validateUpdateInput enforces the same required set as create. An update may
// not blank out a field a listing cannot be published without.
func validateUpdateInput(in *UpdateInput) error {
	switch {
	case in.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidPropertyData)
	case in.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrInvalidPropertyData)
	case in.Price <= 0:
		return fmt.Errorf("%w: price must be positive", domain.ErrInvalidPropertyData)
	case in.AddressLine1 == "":
		return fmt.Errorf("%w: address line is required", domain.ErrInvalidPropertyData)
	case in.City == "":
		return fmt.Errorf("%w: city is required", domain.ErrInvalidPropertyData)
	case in.ContactName == "":
		return fmt.Errorf("%w: contact name is required", domain.ErrInvalidPropertyData)
	case in.ContactPhone == "":
		return fmt.Errorf("%w: contact phone is required", domain.ErrInvalidPropertyData)
	case in.Bedrooms < 0 || in.Bathrooms < 0 || in.Size < 0 || in.Floor < 0:
		return fmt.Errorf("%w: counts and size must not be negative", domain.ErrInvalidPropertyData)
	}
	if in.Type != "" && !domain.BuildingType(in.Type).Valid() {
		return fmt.Errorf("%w: unknown building type %q", domain.ErrInvalidPropertyData, in.Type)
	}
	return nil
}

// Create publishes a new listing owned by ownerID. Image blobs are uploaded
// first and removed again if the database write does not go through.
func (u *PropertyUsecase) Create(ctx context.Context, in CreateInput, ownerID string) (*PropertyDetails, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.Create")
	defer span.End()

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidPropertyData)
	}
	if err := validateCreateInput(&in); err != nil {
		return nil, err
	}

	property := &domain.Property{
		OwnerID:            ownerID,
		Title:              in.Title,
		Description:        in.Description,
		Price:              in.Price,
		AddressLine1:       in.AddressLine1,
		AddressLine2:       in.AddressLine2,
		City:               in.City,
		Governorate:        in.Governorate,
		PostalCode:         in.PostalCode,
		Bedrooms:           in.Bedrooms,
		Bathrooms:          in.Bathrooms,
		Size:               in.Size,
		Floor:              in.Floor,
		Type:               domain.BuildingType(in.Type),
		FurnishingStatus:   in.FurnishingStatus,
		Amenities:          in.Amenities,
		NearbyFacility:     in.NearbyFacility,
		ContactName:        in.ContactName,
		ContactPhone:       in.ContactPhone,
		VerificationStatus: domain.VerificationPending,
	}
	if property.Type == "" {
		property.Type = domain.TypeApartment
	}
	if property.FurnishingStatus == "" {
		property.FurnishingStatus = domain.DefaultFurnishingStatus
	}

	images, err := u.uploadImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}

	if err := u.repo.Create(ctx, property, images); err != nil {
		u.deleteBlobs(ctx, images)
		return nil, err
	}
	span.SetAttributes(attribute.String("property.id", property.ID))

	if u.cache != nil {
		if err := u.cache.Set(ctx, property); err != nil {
			u.logger.Warn("failed to cache property", zap.String("property_id", property.ID), zap.Error(err))
		}
	}
	if u.publisher != nil {
		if err := u.publisher.PublishPropertyCreated(property); err != nil {
			u.logger.Warn("failed to publish created event", zap.String("property_id", property.ID), zap.Error(err))
		}
	}
	u.notifyOwner(ctx, property)

	u.logger.Info("property created",
		zap.String("property_id", property.ID),
		zap.String("owner_id", property.OwnerID),
		zap.Int("images", len(images)))

	details := toPropertyDetails(property, true)
	return &details, nil
}

// notifyOwner emails the owner that the listing went live. Lookup or send
// failures only get logged.
func (u *PropertyUsecase) notifyOwner(ctx context.Context, property *domain.Property) {
	if u.mailer == nil {
		return
	}
	email, err := u.users.GetEmailByID(ctx, property.OwnerID)
	if err != nil {
		u.logger.Warn("failed to resolve owner email",
			zap.String("owner_id", property.OwnerID), zap.Error(err))
		return
	}
	if err := u.mailer.SendPropertyPublishedEmail(email, property.Title); err != nil {
		u.logger.Warn("failed to send publish notification",
			zap.String("owner_id", property.OwnerID), zap.Error(err))
	}
}

// GetByID returns the listing detail view. callerIdentity may be empty, an
// account id or an account email.
func (u *PropertyUsecase) GetByID(ctx context.Context, id, callerIdentity string) (*PropertyDetails, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.GetByID")
	defer span.End()

	property, err := u.loadProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner, err := u.resolveOwnership(ctx, property, callerIdentity)
	if err != nil {
		return nil, err
	}

	details := toPropertyDetails(property, isOwner)
	return &details, nil
}

// loadProperty is the cache-aside read path.
func (u *PropertyUsecase) loadProperty(ctx context.Context, id string) (*domain.Property, error) {
	if u.cache != nil {
		cached, err := u.cache.Get(ctx, id)
		if err != nil {
			u.logger.Warn("property cache read failed", zap.String("property_id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	property, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, property); err != nil {
			u.logger.Warn("failed to cache property", zap.String("property_id", id), zap.Error(err))
		}
	}
	return property, nil
}

// Search returns listings matching the filter, newest first.
func (u *PropertyUsecase) Search(ctx context.Context, filter domain.Filter, callerIdentity string) ([]PropertyView, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.Search")
	defer span.End()

	properties, err := u.repo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return u.toViews(ctx, properties, callerIdentity)
}

// GetByOwner returns all listings published by ownerID, newest first.
func (u *PropertyUsecase) GetByOwner(ctx context.Context, ownerID string) ([]PropertyView, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.GetByOwner")
	defer span.End()

	properties, err := u.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	views := make([]PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, toPropertyView(p, true))
	}
	return views, nil
}

// toViews resolves ownership once per distinct owner, so an email identity
// costs one user lookup per owner rather than one per listing.
func (u *PropertyUsecase) toViews(ctx context.Context, properties []*domain.Property, callerIdentity string) ([]PropertyView, error) {
	views := make([]PropertyView, 0, len(properties))
	ownership := make(map[string]bool, len(properties))
	for _, p := range properties {
		isOwner, resolved := ownership[p.OwnerID]
		if !resolved {
			var err error
			isOwner, err = u.resolveOwnership(ctx, p, callerIdentity)
			if err != nil {
				return nil, err
			}
			ownership[p.OwnerID] = isOwner
		}
		views = append(views, toPropertyView(p, isOwner))
	}
	return views, nil
}

// Update edits a listing. Only the owner may update; a non-owner caller gets
// ErrNotOwner and nothing changes.
func (u *PropertyUsecase) Update(ctx context.Context, id string, in UpdateInput, callerIdentity string) (*PropertyDetails, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.Update")
	defer span.End()

	property, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner, err := u.resolveOwnership(ctx, property, callerIdentity)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, domain.ErrNotOwner
	}

	if err := validateUpdateInput(&in); err != nil {
		return nil, err
	}

	property.Title = in.Title
	property.Description = in.Description
	property.Price = in.Price
	property.AddressLine1 = in.AddressLine1
	property.AddressLine2 = in.AddressLine2
	property.City = in.City
	property.Governorate = in.Governorate
	property.PostalCode = in.PostalCode
	property.Bedrooms = in.Bedrooms
	property.Bathrooms = in.Bathrooms
	property.Size = in.Size
	property.Floor = in.Floor
	if in.Type != "" {
		property.Type = domain.BuildingType(in.Type)
	}
	if in.FurnishingStatus != "" {
		property.FurnishingStatus = in.FurnishingStatus
	}
	property.Amenities = in.Amenities
	property.NearbyFacility = in.NearbyFacility
	property.ContactName = in.ContactName
	property.ContactPhone = in.ContactPhone

	if err := u.applyImageDelta(ctx, property, in.RemoveImageURLs, in.NewImages); err != nil {
		return nil, err
	}

	if err := u.repo.Update(ctx, property); err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Delete(ctx, property.ID); err != nil {
			u.logger.Warn("failed to invalidate property cache", zap.String("property_id", property.ID), zap.Error(err))
		}
	}
	if u.publisher != nil {
		if err := u.publisher.PublishPropertyUpdated(property); err != nil {
			u.logger.Warn("failed to publish updated event", zap.String("property_id", property.ID), zap.Error(err))
		}
	}

	updated, err := u.repo.FindByID(ctx, property.ID)
	if err != nil {
		return nil, err
	}
	details := toPropertyDetails(updated, true)
	return &details, nil
}

// applyImageDelta removes the requested image records and blobs, then uploads
// and attaches the new ones. Every removed URL must belong to the property.
func (u *PropertyUsecase) applyImageDelta(ctx context.Context, property *domain.Property, removeURLs []string, newImages []domain.ImageUpload) error {
	if len(removeURLs) > 0 {
		existing := make(map[string]bool, len(property.Images))
		for _, img := range property.Images {
			existing[img.URL] = true
		}
		for _, url := range removeURLs {
			if !existing[url] {
				return fmt.Errorf("%w: %s", domain.ErrImageNotFound, url)
			}
		}

		if err := u.repo.RemoveImages(ctx, property.ID, removeURLs); err != nil {
			return err
		}
		for _, url := range removeURLs {
			if err := u.storage.Delete(ctx, url); err != nil {
				u.logger.Warn("failed to delete image blob",
					zap.String("property_id", property.ID), zap.String("url", url), zap.Error(err))
			}
		}
	}

	if len(newImages) > 0 {
		uploaded, err := u.uploadImages(ctx, newImages)
		if err != nil {
			return err
		}
		if err := u.repo.AddImages(ctx, property.ID, uploaded); err != nil {
			u.deleteBlobs(ctx, uploaded)
			return err
		}
	}
	return nil
}

// Delete removes a listing, its image records and its blobs. Only the owner
// may delete.
func (u *PropertyUsecase) Delete(ctx context.Context, id, callerIdentity string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.Delete")
	defer span.End()

	property, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	isOwner, err := u.resolveOwnership(ctx, property, callerIdentity)
	if err != nil {
		return err
	}
	if !isOwner {
		return domain.ErrNotOwner
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}

	u.deleteBlobs(ctx, property.Images)

	if u.cache != nil {
		if err := u.cache.Delete(ctx, id); err != nil {
			u.logger.Warn("failed to invalidate property cache", zap.String("property_id", id), zap.Error(err))
		}
	}
	if u.publisher != nil {
		if err := u.publisher.PublishPropertyDeleted(id); err != nil {
			u.logger.Warn("failed to publish deleted event", zap.String("property_id", id), zap.Error(err))
		}
	}

	u.logger.Info("property deleted", zap.String("property_id", id))
	return nil
}

// NearbyForUser recommends listings from the user's home region, same-city
// listings first. An unknown user or one without a region gets an empty
// result, not an error.
func (u *PropertyUsecase) NearbyForUser(ctx context.Context, userID string, limit int) ([]PropertyView, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.NearbyForUser")
	defer span.End()

	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	profile, err := u.users.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []PropertyView{}, nil
		}
		return nil, err
	}
	if profile.Governorate == "" {
		return []PropertyView{}, nil
	}

	properties, err := u.repo.FindByRegion(ctx, profile.Governorate)
	if err != nil {
		return nil, err
	}

	// Same-city listings first, input order preserved within each group.
	ordered := make([]*domain.Property, 0, len(properties))
	var rest []*domain.Property
	for _, p := range properties {
		if profile.City != "" && strings.EqualFold(p.City, profile.City) {
			ordered = append(ordered, p)
		} else {
			rest = append(rest, p)
		}
	}
	ordered = append(ordered, rest...)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	views := make([]PropertyView, 0, len(ordered))
	for _, p := range ordered {
		views = append(views, toPropertyView(p, strings.EqualFold(p.OwnerID, userID)))
	}
	return views, nil
}

// HomePage returns the six newest listings as compact cards.
func (u *PropertyUsecase) HomePage(ctx context.Context) ([]RecommendedView, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "PropertyUsecase.HomePage")
	defer span.End()

	properties, err := u.repo.FindRecent(ctx, 6)
	if err != nil {
		return nil, err
	}

	cards := make([]RecommendedView, 0, len(properties))
	for _, p := range properties {
		cards = append(cards, RecommendedView{
			ID:             p.ID,
			Title:          p.Title,
			Location:       p.City,
			PriceFormatted: formatPrice(p.Price),
			AreaFormatted:  formatArea(p.Size),
			ImageURL:       mainImageURL(p, defaultPropertyImage),
		})
	}
	return cards, nil
}

func (u *PropertyUsecase) uploadImages(ctx context.Context, uploads []domain.ImageUpload) ([]domain.Image, error) {
	images := make([]domain.Image, 0, len(uploads))
	for _, upload := range uploads {
		if len(upload.Data) == 0 {
			u.deleteBlobs(ctx, images)
			return nil, domain.ErrEmptyImageUpload
		}
		url, err := u.storage.Upload(ctx, upload.FileName, upload.ContentType, upload.Data)
		if err != nil {
			u.deleteBlobs(ctx, images)
			return nil, fmt.Errorf("failed to upload image %s: %w", upload.FileName, err)
		}
		images = append(images, domain.Image{
			URL:         url,
			FileName:    upload.FileName,
			FileSize:    int64(len(upload.Data)),
			ContentType: upload.ContentType,
		})
	}
	return images, nil
}

func (u *PropertyUsecase) deleteBlobs(ctx context.Context, images []domain.Image) {
	for _, img := range images {
		if err := u.storage.Delete(ctx, img.URL); err != nil {
			u.logger.Warn("failed to delete image blob", zap.String("url", img.URL), zap.Error(err))
		}
	}
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	propertyCollectionName = "properties"
	imageCollectionName    = "images"
)

type PropertyRepository struct {
	client     *mongo.Client
	properties *mongo.Collection
	images     *mongo.Collection
	logger     *zap.Logger
}

func NewPropertyRepository(client *mongo.Client, dbName string, logger *zap.Logger) *PropertyRepository {
	db := client.Database(dbName)
	return &PropertyRepository{
		client:     client,
		properties: db.Collection(propertyCollectionName),
		images:     db.Collection(imageCollectionName),
		logger:     logger,
	}
}

// buildFilterQuery composes the bson query for a search. Text and location
// terms become case-insensitive substring matches; amenities require every
// requested value to be present in the stored set.
func buildFilterQuery(f domain.Filter) bson.M {
	query := bson.M{}

	if f.SearchTerm != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.SearchTerm), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
	}
	if f.Location != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Location), Options: "i"}
		// A location term may name a city, a governorate or part of a street.
		loc := bson.A{
			bson.M{"city": re},
			bson.M{"governorate": re},
			bson.M{"address_line1": re},
		}
		if _, ok := query["$or"]; ok {
			query["$and"] = bson.A{
				bson.M{"$or": query["$or"]},
				bson.M{"$or": loc},
			}
			delete(query, "$or")
		} else {
			query["$or"] = loc
		}
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	size := bson.M{}
	if f.MinSize != nil {
		size["$gte"] = *f.MinSize
	}
	if f.MaxSize != nil {
		size["$lte"] = *f.MaxSize
	}
	if len(size) > 0 {
		query["size"] = size
	}

	if f.Bedrooms != nil {
		query["bedrooms"] = *f.Bedrooms
	}
	if f.Bathrooms != nil {
		query["bathrooms"] = *f.Bathrooms
	}
	if f.Type != "" {
		query["type"] = f.Type
	}
	if f.FurnishingStatus != "" {
		query["furnishing_status"] = f.FurnishingStatus
	}
	if len(f.Amenities) > 0 {
		query["amenities"] = bson.M{"$all": f.Amenities}
	}

	return query
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property, images []domain.Image) error {
	propertyID := primitive.NewObjectID()
	property.ID = propertyID.Hex()
	property.CreatedAt = time.Now().UTC()

	doc, err := toPropertyDocument(property)
	if err != nil {
		return err
	}

	imageDocs := make([]interface{}, 0, len(images))
	for i := range images {
		images[i].ID = primitive.NewObjectID().Hex()
		images[i].PropertyID = property.ID
		images[i].CreatedAt = property.CreatedAt
		imgDoc, err := toImageDocument(&images[i], propertyID)
		if err != nil {
			return err
		}
		imageDocs = append(imageDocs, imgDoc)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.properties.InsertOne(sc, doc); err != nil {
			return nil, fmt.Errorf("failed to insert property: %w", err)
		}
		if len(imageDocs) > 0 {
			if _, err := r.images.InsertMany(sc, imageDocs); err != nil {
				return nil, fmt.Errorf("failed to insert images: %w", err)
			}
		}
		return nil, nil
	})
	if err != nil {
		r.logger.Error("property create transaction aborted",
			zap.String("property_id", property.ID), zap.Error(err))
		return err
	}

	property.Images = images
	return nil
}

// Update overwrites the mutable descriptive fields only. Owner, verification
// status and creation timestamp are never touched here.
func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	objID, err := primitive.ObjectIDFromHex(property.ID)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":             property.Title,
		"description":       property.Description,
		"price":             property.Price,
		"address_line1":     property.AddressLine1,
		"address_line2":     property.AddressLine2,
		"city":              property.City,
		"governorate":       property.Governorate,
		"postal_code":       property.PostalCode,
		"bedrooms":          property.Bedrooms,
		"bathrooms":         property.Bathrooms,
		"size":              property.Size,
		"floor":             property.Floor,
		"type":              string(property.Type),
		"furnishing_status": property.FurnishingStatus,
		"amenities":         property.Amenities,
		"nearby_facility":   property.NearbyFacility,
		"contact_name":      property.ContactName,
		"contact_phone":     property.ContactPhone,
		"is_featured":       property.IsFeatured,
	}}

	res, err := r.properties.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// Delete removes the property together with its image records in one
// transaction. Blob cleanup is the caller's job.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.images.DeleteMany(sc, bson.M{"property_id": objID}); err != nil {
			return nil, fmt.Errorf("failed to delete property images: %w", err)
		}
		res, err := r.properties.DeleteOne(sc, bson.M{"_id": objID})
		if err != nil {
			return nil, fmt.Errorf("failed to delete property: %w", err)
		}
		if res.DeletedCount == 0 {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, nil
	})
	return err
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	var doc propertyDocument
	err = r.properties.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	property := toDomainProperty(&doc)
	if err := r.attachImages(ctx, []*domain.Property{property}); err != nil {
		return nil, err
	}
	return property, nil
}

func (r *PropertyRepository) FindByFilter(ctx context.Context, filter domain.Filter) ([]*domain.Property, error) {
	return r.findSorted(ctx, buildFilterQuery(filter), 0)
}

func (r *PropertyRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	return r.findSorted(ctx, bson.M{"owner_id": ownerID}, 0)
}

func (r *PropertyRepository) FindByRegion(ctx context.Context, governorate string) ([]*domain.Property, error) {
	return r.findSorted(ctx, bson.M{"governorate": governorate}, 0)
}

func (r *PropertyRepository) FindRecent(ctx context.Context, limit int64) ([]*domain.Property, error) {
	return r.findSorted(ctx, bson.M{}, limit)
}

// findSorted runs a query sorted newest first and eagerly loads images.
func (r *PropertyRepository) findSorted(ctx context.Context, query bson.M, limit int64) ([]*domain.Property, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.properties.Find(ctx, query, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}

	properties := make([]*domain.Property, 0, len(docs))
	for i := range docs {
		properties = append(properties, toDomainProperty(&docs[i]))
	}
	if err := r.attachImages(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// attachImages loads the image collections for a batch of properties with a
// single query, ordered oldest first so Images[0] is the main image.
func (r *PropertyRepository) attachImages(ctx context.Context, properties []*domain.Property) error {
	if len(properties) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(properties))
	byID := make(map[string]*domain.Property, len(properties))
	for _, p := range properties {
		objID, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return fmt.Errorf("invalid property ID %q: %w", p.ID, err)
		}
		ids = append(ids, objID)
		byID[p.ID] = p
		p.Images = nil
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := r.images.Find(ctx, bson.M{"property_id": bson.M{"$in": ids}}, findOptions)
	if err != nil {
		return fmt.Errorf("failed to query images: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []imageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return fmt.Errorf("failed to decode images: %w", err)
	}

	for i := range docs {
		img := toDomainImage(&docs[i])
		if p, ok := byID[img.PropertyID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return nil
}

func (r *PropertyRepository) AddImages(ctx context.Context, propertyID string, images []domain.Image) error {
	objID, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(images))
	for i := range images {
		images[i].ID = primitive.NewObjectID().Hex()
		images[i].PropertyID = propertyID
		images[i].CreatedAt = now
		doc, err := toImageDocument(&images[i], objID)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}

	if _, err := r.images.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert images: %w", err)
	}
	return nil
}

func (r *PropertyRepository) RemoveImages(ctx context.Context, propertyID string, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	res, err := r.images.DeleteMany(ctx, bson.M{
		"property_id": objID,
		"url":         bson.M{"$in": urls},
	})
	if err != nil {
		return fmt.Errorf("failed to delete images: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

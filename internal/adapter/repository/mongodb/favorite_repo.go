package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const favoriteCollectionName = "favorites"

type FavoriteRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewFavoriteRepository(client *mongo.Client, dbName string, logger *zap.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		collection: client.Database(dbName).Collection(favoriteCollectionName),
		logger:     logger,
	}
}

// EnsureIndexes creates the unique (user_id, property_id) index the Add
// idempotency contract depends on. Call once at startup.
func (r *FavoriteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "property_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create favorites index: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	favorite.CreatedAt = time.Now().UTC()
	doc := &favoriteDocument{
		UserID:     favorite.UserID,
		PropertyID: favorite.PropertyID,
		CreatedAt:  favorite.CreatedAt,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateFavorite
		}
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		favorite.ID = oid.Hex()
	}
	r.logger.Debug("favorite added",
		zap.String("user_id", favorite.UserID),
		zap.String("property_id", favorite.PropertyID))
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, propertyID string) error {
	if userID == "" || propertyID == "" {
		return errors.New("user ID and property ID are required")
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "property_id": propertyID})
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []favoriteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}

	favorites := make([]*domain.Favorite, 0, len(docs))
	for i := range docs {
		favorites = append(favorites, toDomainFavorite(&docs[i]))
	}
	return favorites, nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const userCollectionName = "users"

// UserRepository reads the account records owned by the user service. The
// catalog only needs the owner email and the home region from them.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(client *mongo.Client, dbName string) *UserRepository {
	return &UserRepository{collection: client.Database(dbName).Collection(userCollectionName)}
}

type userDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Email       string             `bson:"email"`
	City        string             `bson:"city,omitempty"`
	Governorate string             `bson:"governorate,omitempty"`
}

func (r *UserRepository) GetEmailByID(ctx context.Context, userID string) (string, error) {
	profile, err := r.GetProfileByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return profile.Email, nil
}

func (r *UserRepository) GetProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var doc userDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &domain.UserProfile{
		ID:          doc.ID.Hex(),
		Email:       doc.Email,
		City:        doc.City,
		Governorate: doc.Governorate,
	}, nil
}

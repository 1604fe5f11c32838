package mongodb

import (
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// propertyDocument is the stored shape of a domain.Property. Images live in
// their own collection keyed by property_id.
type propertyDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID            string             `bson:"owner_id"`
	Title              string             `bson:"title"`
	Description        string             `bson:"description"`
	Price              float64            `bson:"price"`
	AddressLine1       string             `bson:"address_line1"`
	AddressLine2       string             `bson:"address_line2,omitempty"`
	City               string             `bson:"city"`
	Governorate        string             `bson:"governorate"`
	PostalCode         string             `bson:"postal_code,omitempty"`
	Bedrooms           int                `bson:"bedrooms"`
	Bathrooms          int                `bson:"bathrooms"`
	Size               int                `bson:"size"`
	Floor              int                `bson:"floor"`
	Type               string             `bson:"type"`
	FurnishingStatus   string             `bson:"furnishing_status"`
	Amenities          []string           `bson:"amenities,omitempty"`
	NearbyFacility     string             `bson:"nearby_facility,omitempty"`
	ContactName        string             `bson:"contact_name"`
	ContactPhone       string             `bson:"contact_phone"`
	VerificationStatus string             `bson:"verification_status"`
	IsFeatured         bool               `bson:"is_featured"`
	CreatedAt          time.Time          `bson:"created_at"`
}

type imageDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PropertyID  primitive.ObjectID `bson:"property_id"`
	URL         string             `bson:"url"`
	FileName    string             `bson:"file_name"`
	FileSize    int64              `bson:"file_size"`
	ContentType string             `bson:"content_type"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type favoriteDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	PropertyID string             `bson:"property_id"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func toPropertyDocument(p *domain.Property) (*propertyDocument, error) {
	doc := &propertyDocument{
		OwnerID:            p.OwnerID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		AddressLine1:       p.AddressLine1,
		AddressLine2:       p.AddressLine2,
		City:               p.City,
		Governorate:        p.Governorate,
		PostalCode:         p.PostalCode,
		Bedrooms:           p.Bedrooms,
		Bathrooms:          p.Bathrooms,
		Size:               p.Size,
		Floor:              p.Floor,
		Type:               string(p.Type),
		FurnishingStatus:   p.FurnishingStatus,
		Amenities:          p.Amenities,
		NearbyFacility:     p.NearbyFacility,
		ContactName:        p.ContactName,
		ContactPhone:       p.ContactPhone,
		VerificationStatus: string(p.VerificationStatus),
		IsFeatured:         p.IsFeatured,
		CreatedAt:          p.CreatedAt,
	}
	if p.ID != "" {
		objID, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid property ID %q: %w", p.ID, err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toDomainProperty(doc *propertyDocument) *domain.Property {
	return &domain.Property{
		ID:                 doc.ID.Hex(),
		OwnerID:            doc.OwnerID,
		Title:              doc.Title,
		Description:        doc.Description,
		Price:              doc.Price,
		AddressLine1:       doc.AddressLine1,
		AddressLine2:       doc.AddressLine2,
		City:               doc.City,
		Governorate:        doc.Governorate,
		PostalCode:         doc.PostalCode,
		Bedrooms:           doc.Bedrooms,
		Bathrooms:          doc.Bathrooms,
		Size:               doc.Size,
		Floor:              doc.Floor,
		Type:               domain.BuildingType(doc.Type),
		FurnishingStatus:   doc.FurnishingStatus,
		Amenities:          doc.Amenities,
		NearbyFacility:     doc.NearbyFacility,
		ContactName:        doc.ContactName,
		ContactPhone:       doc.ContactPhone,
		VerificationStatus: domain.VerificationStatus(doc.VerificationStatus),
		IsFeatured:         doc.IsFeatured,
		CreatedAt:          doc.CreatedAt,
	}
}

func toImageDocument(img *domain.Image, propertyID primitive.ObjectID) (*imageDocument, error) {
	doc := &imageDocument{
		PropertyID:  propertyID,
		URL:         img.URL,
		FileName:    img.FileName,
		FileSize:    img.FileSize,
		ContentType: img.ContentType,
		CreatedAt:   img.CreatedAt,
	}
	if img.ID != "" {
		objID, err := primitive.ObjectIDFromHex(img.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid image ID %q: %w", img.ID, err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toDomainImage(doc *imageDocument) domain.Image {
	return domain.Image{
		ID:          doc.ID.Hex(),
		PropertyID:  doc.PropertyID.Hex(),
		URL:         doc.URL,
		FileName:    doc.FileName,
		FileSize:    doc.FileSize,
		ContentType: doc.ContentType,
		CreatedAt:   doc.CreatedAt,
	}
}

func toDomainFavorite(doc *favoriteDocument) *domain.Favorite {
	return &domain.Favorite{
		ID:         doc.ID.Hex(),
		UserID:     doc.UserID,
		PropertyID: doc.PropertyID,
		CreatedAt:  doc.CreatedAt,
	}
}

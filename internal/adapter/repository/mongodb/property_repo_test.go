package mongodb

import (
	"testing"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildFilterQuery_Empty(t *testing.T) {
	query := buildFilterQuery(domain.Filter{})
	assert.Empty(t, query)
}

func TestBuildFilterQuery_SearchTerm(t *testing.T) {
	query := buildFilterQuery(domain.Filter{SearchTerm: "sea view"})

	or, ok := query["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 2)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, "sea view", title.Pattern)
	assert.Equal(t, "i", title.Options)
}

func TestBuildFilterQuery_SearchTermIsQuoted(t *testing.T) {
	query := buildFilterQuery(domain.Filter{SearchTerm: "2+2 (cheap)"})

	or := query["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `2\+2 \(cheap\)`, title.Pattern)
}

func TestBuildFilterQuery_SearchAndLocationCombine(t *testing.T) {
	query := buildFilterQuery(domain.Filter{SearchTerm: "villa", Location: "Cairo"})

	assert.NotContains(t, query, "$or")
	and, ok := query["$and"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, and, 2)
}

func TestBuildFilterQuery_Ranges(t *testing.T) {
	query := buildFilterQuery(domain.Filter{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(500000),
		MinSize:  intPtr(80),
	})

	price := query["price"].(bson.M)
	assert.Equal(t, float64(100000), price["$gte"])
	assert.Equal(t, float64(500000), price["$lte"])

	size := query["size"].(bson.M)
	assert.Equal(t, 80, size["$gte"])
	assert.NotContains(t, size, "$lte")
}

func TestBuildFilterQuery_ExactFields(t *testing.T) {
	query := buildFilterQuery(domain.Filter{
		Bedrooms:         intPtr(3),
		Bathrooms:        intPtr(2),
		Type:             "Villa",
		FurnishingStatus: "Furnished",
	})

	assert.Equal(t, 3, query["bedrooms"])
	assert.Equal(t, 2, query["bathrooms"])
	assert.Equal(t, "Villa", query["type"])
	assert.Equal(t, "Furnished", query["furnishing_status"])
}

func TestBuildFilterQuery_AmenitiesRequireAll(t *testing.T) {
	query := buildFilterQuery(domain.Filter{Amenities: []string{"Pool", "Garage"}})

	amenities := query["amenities"].(bson.M)
	assert.Equal(t, bson.M{"$all": []string{"Pool", "Garage"}}, amenities)
}

func TestPropertyDocumentRoundTrip(t *testing.T) {
	objID := primitive.NewObjectID()
	property := &domain.Property{
		ID:                 objID.Hex(),
		OwnerID:            "owner-1",
		Title:              "Townhouse",
		Price:              950000,
		City:               "Giza",
		Type:               domain.TypeHouse,
		FurnishingStatus:   "Semi Furnished",
		Amenities:          []string{"Garden"},
		VerificationStatus: domain.VerificationPending,
	}

	doc, err := toPropertyDocument(property)
	assert.NoError(t, err)

	back := toDomainProperty(doc)
	assert.Equal(t, property.ID, back.ID)
	assert.Equal(t, property.OwnerID, back.OwnerID)
	assert.Equal(t, property.Type, back.Type)
	assert.Equal(t, property.Amenities, back.Amenities)
	assert.Equal(t, property.VerificationStatus, back.VerificationStatus)
}

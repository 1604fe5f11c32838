package domain

import "time"

type BuildingType string

const (
	TypeApartment BuildingType = "Apartment"
	TypeVilla     BuildingType = "Villa"
	TypeHouse     BuildingType = "House"
)

func (t BuildingType) Valid() bool {
	switch t {
	case TypeApartment, TypeVilla, TypeHouse:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationApproved VerificationStatus = "Approved"
	VerificationRejected VerificationStatus = "Rejected"
)

// DefaultFurnishingStatus is applied when a create payload omits the field.
const DefaultFurnishingStatus = "Not Furnished"

// Property is a published listing. OwnerID is set once at creation and never
// reassigned; VerificationStatus changes only through the moderation path.
type Property struct {
	ID                 string
	OwnerID            string
	Title              string
	Description        string
	Price              float64
	AddressLine1       string
	AddressLine2       string
	City               string
	Governorate        string
	PostalCode         string
	Bedrooms           int
	Bathrooms          int
	Size               int
	Floor              int
	Type               BuildingType
	FurnishingStatus   string
	Amenities          []string
	NearbyFacility     string
	ContactName        string
	ContactPhone       string
	VerificationStatus VerificationStatus
	IsFeatured         bool
	CreatedAt          time.Time

	// Images are loaded eagerly on every read, ordered oldest first.
	Images []Image
}

// Image belongs to exactly one property and never outlives it.
type Image struct {
	ID          string
	PropertyID  string
	URL         string
	FileName    string
	FileSize    int64
	ContentType string
	CreatedAt   time.Time
}

// ImageUpload is a raw file handed in by a caller, not yet stored.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Favorite links a user to a property. The (UserID, PropertyID) pair is unique.
type Favorite struct {
	ID         string
	UserID     string
	PropertyID string
	CreatedAt  time.Time
}

// Filter describes a property search. Every field is optional; set fields
// combine with AND semantics. Nil pointers mean "no constraint".
type Filter struct {
	SearchTerm       string
	Location         string
	MinPrice         *float64
	MaxPrice         *float64
	MinSize          *int
	MaxSize          *int
	Bedrooms         *int
	Bathrooms        *int
	Type             string
	FurnishingStatus string
	Amenities        []string
}

// UserProfile is the slice of the account record the catalog needs: the email
// for ownership checks and the home region for recommendations.
type UserProfile struct {
	ID          string
	Email       string
	City        string
	Governorate string
}

// EstimateFeatures is the fixed payload for the external price predictor.
type EstimateFeatures struct {
	Price            float64 `json:"price"`
	Area             int     `json:"area"`
	Bedrooms         int     `json:"bedrooms"`
	Bathrooms        int     `json:"bathrooms"`
	PropertyType     string  `json:"propertyType"`
	Amenities        string  `json:"amenities"`
	NearbyFacilities string  `json:"nearbyFacilities"`
}

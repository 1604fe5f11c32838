package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
)

const (
	defaultPropertyImage = "default-image.jpg"
	defaultFavoriteImage = "/images/default-property.jpg"

	favoriteTitleLimit    = 20
	shortDescriptionLimit = 100
)

// PropertyView is the read model returned by catalog queries.
type PropertyView struct {
	ID               string
	Title            string
	Description      string
	ContactName      string
	ContactPhone     string
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
	Images           []string
	MainImageURL     string
	IsOwner          bool
	CreatedAt        time.Time
}

// PropertyDetails adds the derived presentation fields used on a detail page.
type PropertyDetails struct {
	PropertyView
	ShortDescription string
	FormattedPrice   string
}

type FavoriteView struct {
	UserID         string
	PropertyID     string
	Title          string
	Address        string
	Price          float64
	FormattedPrice string
	Area           int
	MainImageURL   string
}

// RecommendedView is the compact card shown on the home page.
type RecommendedView struct {
	ID             string
	Title          string
	Location       string
	PriceFormatted string
	AreaFormatted  string
	ImageURL       string
}

func toPropertyView(p *domain.Property, isOwner bool) PropertyView {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return PropertyView{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		ContactName:      p.ContactName,
		ContactPhone:     p.ContactPhone,
		Price:            p.Price,
		AddressLine1:     p.AddressLine1,
		AddressLine2:     p.AddressLine2,
		City:             p.City,
		Governorate:      p.Governorate,
		PostalCode:       p.PostalCode,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		Size:             p.Size,
		Floor:            p.Floor,
		Type:             string(p.Type),
		FurnishingStatus: p.FurnishingStatus,
		Amenities:        p.Amenities,
		NearbyFacility:   p.NearbyFacility,
		Images:           urls,
		MainImageURL:     mainImageURL(p, defaultPropertyImage),
		IsOwner:          isOwner,
		CreatedAt:        p.CreatedAt,
	}
}

func toPropertyDetails(p *domain.Property, isOwner bool) PropertyDetails {
	return PropertyDetails{
		PropertyView:     toPropertyView(p, isOwner),
		ShortDescription: shortDescription(p.Description),
		FormattedPrice:   formatPrice(p.Price),
	}
}

// mainImageURL returns the earliest uploaded image, or the placeholder when
// the property has none. Images come from the repository oldest first.
func mainImageURL(p *domain.Property, placeholder string) string {
	if len(p.Images) == 0 {
		return placeholder
	}
	return p.Images[0].URL
}

// formatPrice renders a price as whole currency with thousands separators,
// e.g. "$1,250,000".
func formatPrice(price float64) string {
	value := int64(math.Round(price))
	negative := value < 0
	if negative {
		value = -value
	}

	digits := strconv.FormatInt(value, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func formatArea(size int) string {
	return fmt.Sprintf("%d sqft", size)
}

// shortDescription caps a description at 100 characters with a trailing
// ellipsis. Limits count runes, not bytes, so multibyte text is never cut
// mid-character.
func shortDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= shortDescriptionLimit {
		return description
	}
	return string(runes[:shortDescriptionLimit]) + "..."
}

// favoriteTitle caps a title at 20 characters for the favorites list.
func favoriteTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= favoriteTitleLimit {
		return title
	}
	return string(runes[:favoriteTitleLimit-3]) + "..."
}

package usecase

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1,000"},
		{20000, "$20,000"},
		{1250000, "$1,250,000"},
		{19999.6, "$20,000"},
		{-5000, "-$5,000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatPrice(tc.price))
	}
}

func TestShortDescription(t *testing.T) {
	short := "fits as is"
	assert.Equal(t, short, shortDescription(short))

	exact := strings.Repeat("a", 100)
	assert.Equal(t, exact, shortDescription(exact))

	long := strings.Repeat("a", 101)
	assert.Equal(t, strings.Repeat("a", 100)+"...", shortDescription(long))
}

func TestFavoriteTitle(t *testing.T) {
	assert.Equal(t, "Cozy studio", favoriteTitle("Cozy studio"))

	exact := strings.Repeat("t", 20)
	assert.Equal(t, exact, favoriteTitle(exact))

	long := "A very long listing title indeed"
	got := favoriteTitle(long)
	assert.Equal(t, 20, len(got))
	assert.Equal(t, long[:17]+"...", got)
}

func TestTruncationCountsRunes(t *testing.T) {
	arabicExact := strings.Repeat("فيلا", 5)
	assert.Equal(t, arabicExact, favoriteTitle(arabicExact))

	arabicLong := strings.Repeat("فيلا", 8)
	got := favoriteTitle(arabicLong)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, string([]rune(arabicLong)[:17])+"...", got)
	assert.Equal(t, 20, utf8.RuneCountInString(got))

	arabicDescription := strings.Repeat("شقة مفروشة", 20)
	short := shortDescription(arabicDescription)
	assert.True(t, utf8.ValidString(short))
	assert.Equal(t, string([]rune(arabicDescription)[:100])+"...", short)
	assert.Equal(t, 103, utf8.RuneCountInString(short))
}

func TestMainImageURL(t *testing.T) {
	empty := &domain.Property{}
	assert.Equal(t, defaultPropertyImage, mainImageURL(empty, defaultPropertyImage))
	assert.Equal(t, defaultFavoriteImage, mainImageURL(empty, defaultFavoriteImage))

	withImages := &domain.Property{Images: []domain.Image{
		{URL: "http://minio/bucket/first.jpg"},
		{URL: "http://minio/bucket/second.jpg"},
	}}
	assert.Equal(t, "http://minio/bucket/first.jpg", mainImageURL(withImages, defaultPropertyImage))
}

func TestLooksLikeEmail(t *testing.T) {
	assert.True(t, looksLikeEmail("user@example.com"))
	assert.False(t, looksLikeEmail("665f1c2e8b3f4a0001a1b2c3"))
	assert.False(t, looksLikeEmail(""))
}

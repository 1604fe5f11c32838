package domain

import "errors"

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrImageNotFound       = errors.New("image not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotOwner            = errors.New("caller is not the property owner")
	ErrInvalidPropertyData = errors.New("invalid property data")
	ErrEmptyImageUpload    = errors.New("no images provided")
	ErrDuplicateFavorite   = errors.New("favorite already exists")
	ErrFavoriteNotFound    = errors.New("favorite not found")
	ErrEstimationFailed    = errors.New("price estimation failed")
)

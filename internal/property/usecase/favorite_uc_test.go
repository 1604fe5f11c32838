package usecase

import (
	"context"
	"testing"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestFavoriteUsecase_Add(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("FirstAddSucceeds", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		mockProperties.On("FindByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1"}, nil).Once()
		mockFavorites.On("Add", mock.Anything, mock.AnythingOfType("*domain.Favorite")).Return(nil).Once()

		added, err := uc.Add(ctx, "u1", "p1")

		assert.NoError(t, err)
		assert.True(t, added)
		mockFavorites.AssertExpectations(t)
	})

	t.Run("RepeatedAddIsHarmless", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		mockProperties.On("FindByID", mock.Anything, "p1").Return(&domain.Property{ID: "p1"}, nil).Once()
		mockFavorites.On("Add", mock.Anything, mock.Anything).Return(domain.ErrDuplicateFavorite).Once()

		added, err := uc.Add(ctx, "u1", "p1")

		assert.NoError(t, err)
		assert.False(t, added)
	})

	t.Run("MissingPropertyRejected", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		mockProperties.On("FindByID", mock.Anything, "gone").Return(nil, domain.ErrPropertyNotFound).Once()

		_, err := uc.Add(ctx, "u1", "gone")

		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
		mockFavorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestFavoriteUsecase_Remove(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("RemoveSucceeds", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		mockFavorites.On("Remove", mock.Anything, "u1", "p1").Return(nil).Once()

		removed, err := uc.Remove(ctx, "u1", "p1")

		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("RemoveAbsentIsHarmless", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		mockFavorites.On("Remove", mock.Anything, "u1", "p1").Return(domain.ErrFavoriteNotFound).Once()

		removed, err := uc.Remove(ctx, "u1", "p1")

		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestFavoriteUsecase_ListForUser(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("EmptyUserIDGetsEmptyList", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		views, err := uc.ListForUser(ctx, "")

		assert.NoError(t, err)
		assert.Empty(t, views)
		mockFavorites.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})

	t.Run("ViewFormatting", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		mockFavorites.On("FindByUserID", mock.Anything, "u1").Return([]*domain.Favorite{
			{ID: "f1", UserID: "u1", PropertyID: "p1"},
		}, nil).Once()
		mockProperties.On("FindByID", mock.Anything, "p1").Return(&domain.Property{
			ID:           "p1",
			Title:        "A very long listing title indeed",
			AddressLine1: "5 Tahrir Square",
			City:         "Cairo",
			Governorate:  "Cairo",
			Price:        20000,
			Size:         90,
		}, nil).Once()

		views, err := uc.ListForUser(ctx, "u1")

		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "A very long listi...", views[0].Title)
		assert.Equal(t, "5 Tahrir Square, Cairo, Cairo", views[0].Address)
		assert.Equal(t, "$20,000", views[0].FormattedPrice)
		assert.Equal(t, defaultFavoriteImage, views[0].MainImageURL)
	})

	t.Run("MissingPropertyIsSkipped", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockProperties := new(MockPropertyRepository)
		uc := NewFavoriteUsecase(mockFavorites, mockProperties, logger)

		mockFavorites.On("FindByUserID", mock.Anything, "u1").Return([]*domain.Favorite{
			{ID: "f1", UserID: "u1", PropertyID: "gone"},
			{ID: "f2", UserID: "u1", PropertyID: "p2"},
		}, nil).Once()
		mockProperties.On("FindByID", mock.Anything, "gone").Return(nil, domain.ErrPropertyNotFound).Once()
		mockProperties.On("FindByID", mock.Anything, "p2").Return(&domain.Property{
			ID: "p2", Title: "Still here", Price: 100,
		}, nil).Once()

		views, err := uc.ListForUser(ctx, "u1")

		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "p2", views[0].PropertyID)
	})
}

package usecase

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/stretchr/testify/mock"
)

type MockPropertyRepository struct{ mock.Mock }

func (m *MockPropertyRepository) Create(ctx context.Context, property *domain.Property, images []domain.Image) error {
	args := m.Called(ctx, property, images)
	return args.Error(0)
}
func (m *MockPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyRepository) FindByFilter(ctx context.Context, filter domain.Filter) ([]*domain.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}
func (m *MockPropertyRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}
func (m *MockPropertyRepository) FindByRegion(ctx context.Context, governorate string) ([]*domain.Property, error) {
	args := m.Called(ctx, governorate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}
func (m *MockPropertyRepository) FindRecent(ctx context.Context, limit int64) ([]*domain.Property, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}
func (m *MockPropertyRepository) AddImages(ctx context.Context, propertyID string, images []domain.Image) error {
	args := m.Called(ctx, propertyID, images)
	return args.Error(0)
}
func (m *MockPropertyRepository) RemoveImages(ctx context.Context, propertyID string, urls []string) error {
	args := m.Called(ctx, propertyID, urls)
	return args.Error(0)
}

type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}
func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, propertyID string) error {
	args := m.Called(ctx, userID, propertyID)
	return args.Error(0)
}
func (m *MockFavoriteRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) GetEmailByID(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
func (m *MockUserRepository) GetProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

type MockFileStorage struct{ mock.Mock }

func (m *MockFileStorage) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, contentType, data)
	return args.String(0), args.Error(1)
}
func (m *MockFileStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

type MockPropertyCache struct{ mock.Mock }

func (m *MockPropertyCache) Get(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}
func (m *MockPropertyCache) Set(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}
func (m *MockPropertyCache) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishPropertyCreated(property *domain.Property) error {
	args := m.Called(property)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishPropertyUpdated(property *domain.Property) error {
	args := m.Called(property)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishPropertyDeleted(propertyID string) error {
	args := m.Called(propertyID)
	return args.Error(0)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendPropertyPublishedEmail(to, propertyTitle string) error {
	args := m.Called(to, propertyTitle)
	return args.Error(0)
}

type MockPriceEstimator struct{ mock.Mock }

func (m *MockPriceEstimator) Predict(ctx context.Context, features domain.EstimateFeatures) (int, error) {
	args := m.Called(ctx, features)
	return args.Int(0), args.Error(1)
}

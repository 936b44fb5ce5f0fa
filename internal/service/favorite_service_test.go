package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"elitemotors/internal/errors"
	"elitemotors/internal/model"
)

// MockFavoriteRepository is a mock implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, carID uint) (int64, error) {
	args := m.Called(ctx, userID, carID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, carID uint) (bool, error) {
	args := m.Called(ctx, userID, carID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListCarsByUser(ctx context.Context, userID uint) ([]model.Car, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockFavoriteRepository, *MockCarRepository)
		expectedError error
	}{
		{
			name: "success",
			setupMock: func(f *MockFavoriteRepository, c *MockCarRepository) {
				c.On("FindByID", mock.Anything, uint(2)).Return(&model.Car{ID: 2}, nil)
				f.On("Exists", mock.Anything, uint(1), uint(2)).Return(false, nil)
				f.On("Create", mock.Anything, mock.AnythingOfType("*model.Favorite")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "car does not exist",
			setupMock: func(f *MockFavoriteRepository, c *MockCarRepository) {
				c.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCarNotFound,
		},
		{
			name: "already favorited",
			setupMock: func(f *MockFavoriteRepository, c *MockCarRepository) {
				c.On("FindByID", mock.Anything, uint(2)).Return(&model.Car{ID: 2}, nil)
				f.On("Exists", mock.Anything, uint(1), uint(2)).Return(true, nil)
			},
			expectedError: errors.ErrFavoriteExists,
		},
		{
			// a concurrent add passes the pre-check but the insert hits the
			// unique index; that is still a duplicate, not a server error
			name: "insert loses duplicate race",
			setupMock: func(f *MockFavoriteRepository, c *MockCarRepository) {
				c.On("FindByID", mock.Anything, uint(2)).Return(&model.Car{ID: 2}, nil)
				f.On("Exists", mock.Anything, uint(1), uint(2)).Return(false, nil)
				f.On("Create", mock.Anything, mock.AnythingOfType("*model.Favorite")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrFavoriteExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFavorites := new(MockFavoriteRepository)
			mockCars := new(MockCarRepository)
			tt.setupMock(mockFavorites, mockCars)

			svc := NewFavoriteService(mockFavorites, mockCars)
			err := svc.AddFavorite(context.Background(), 1, 2)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockFavorites.AssertExpectations(t)
			mockCars.AssertExpectations(t)
		})
	}
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	t.Run("removes existing link", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockCars := new(MockCarRepository)
		mockFavorites.On("Delete", mock.Anything, uint(1), uint(2)).Return(int64(1), nil)

		svc := NewFavoriteService(mockFavorites, mockCars)
		assert.NoError(t, svc.RemoveFavorite(context.Background(), 1, 2))
		mockFavorites.AssertExpectations(t)
	})

	t.Run("missing link reports not found", func(t *testing.T) {
		mockFavorites := new(MockFavoriteRepository)
		mockCars := new(MockCarRepository)
		mockFavorites.On("Delete", mock.Anything, uint(1), uint(2)).Return(int64(0), nil)

		svc := NewFavoriteService(mockFavorites, mockCars)
		assert.Equal(t, errors.ErrFavoriteNotFound, svc.RemoveFavorite(context.Background(), 1, 2))
		mockFavorites.AssertExpectations(t)
	})
}

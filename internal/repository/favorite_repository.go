package repository

import (
	"context"

	"gorm.io/gorm"

	"elitemotors/internal/model"
)

// FavoriteRepository defines favorite persistence operations.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	Delete(ctx context.Context, userID, carID uint) (int64, error)
	Exists(ctx context.Context, userID, carID uint) (bool, error)
	ListCarsByUser(ctx context.Context, userID uint) ([]model.Car, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository builds a GORM-backed repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// Delete removes the favorite link and reports how many rows went away, so
// callers can distinguish "removed" from "was never there".
func (r *favoriteRepository) Delete(ctx context.Context, userID, carID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Delete(&model.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, carID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Count(&count).Error
	return count > 0, err
}

// ListCarsByUser returns the cars a user saved, newest favorite first.
func (r *favoriteRepository) ListCarsByUser(ctx context.Context, userID uint) ([]model.Car, error) {
	var cars []model.Car
	err := r.db.WithContext(ctx).Model(&model.Car{}).
		Joins("JOIN favorites ON favorites.car_id = cars.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"elitemotors/internal/model"
)

// CarRepository defines car persistence operations.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	CreateBatch(ctx context.Context, cars []model.Car) error
	Update(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Car, error)
	List(ctx context.Context) ([]model.Car, error)
	ListFeatured(ctx context.Context) ([]model.Car, error)
	Count(ctx context.Context) (int64, error)
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository builds a GORM-backed repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) CreateBatch(ctx context.Context, cars []model.Car) error {
	return r.db.WithContext(ctx).Create(&cars).Error
}

func (r *carRepository) Update(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

// Delete removes the row permanently; dependent favorites and test drives go
// with it via the foreign key cascade.
func (r *carRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Car{}, id).Error
}

func (r *carRepository) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) List(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) ListFeatured(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Where("featured = ?", true).Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Car{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

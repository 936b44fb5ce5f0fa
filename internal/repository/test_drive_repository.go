package repository

import (
	"context"

	"gorm.io/gorm"

	"elitemotors/internal/model"
)

// TestDriveRepository defines test-drive persistence operations.
type TestDriveRepository interface {
	Create(ctx context.Context, drive *model.TestDrive) error
	ListByUser(ctx context.Context, userID uint) ([]model.TestDrive, error)
}

type testDriveRepository struct {
	db *gorm.DB
}

// NewTestDriveRepository builds a GORM-backed repository.
func NewTestDriveRepository(db *gorm.DB) TestDriveRepository {
	return &testDriveRepository{db: db}
}

func (r *testDriveRepository) Create(ctx context.Context, drive *model.TestDrive) error {
	return r.db.WithContext(ctx).Create(drive).Error
}

// ListByUser returns the user's requests, newest first, with the car
// preloaded for the response.
func (r *testDriveRepository) ListByUser(ctx context.Context, userID uint) ([]model.TestDrive, error) {
	var drives []model.TestDrive
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&drives).Error
	if err != nil {
		return nil, err
	}
	return drives, nil
}

package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/repository"
)

// TestDriveService handles test-drive requests.
type TestDriveService interface {
	ListTestDrives(ctx context.Context, userID uint) ([]model.TestDrive, error)
	CreateTestDrive(ctx context.Context, drive *model.TestDrive) (*model.TestDrive, error)
}

type testDriveService struct {
	driveRepo repository.TestDriveRepository
	carRepo   repository.CarRepository
}

// NewTestDriveService builds a TestDriveService.
func NewTestDriveService(driveRepo repository.TestDriveRepository, carRepo repository.CarRepository) TestDriveService {
	return &testDriveService{driveRepo: driveRepo, carRepo: carRepo}
}

func (s *testDriveService) ListTestDrives(ctx context.Context, userID uint) ([]model.TestDrive, error) {
	return s.driveRepo.ListByUser(ctx, userID)
}

// CreateTestDrive records a request for an existing car. Requests always
// start out pending.
func (s *testDriveService) CreateTestDrive(ctx context.Context, drive *model.TestDrive) (*model.TestDrive, error) {
	if _, err := s.carRepo.FindByID(ctx, drive.CarID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, err
	}

	drive.Status = model.TestDriveStatusPending
	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, fmt.Errorf("create test drive: %w", err)
	}
	return drive, nil
}

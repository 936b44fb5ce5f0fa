package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/repository"
)

// FavoriteService handles a user's saved cars.
type FavoriteService interface {
	ListFavorites(ctx context.Context, userID uint) ([]model.Car, error)
	AddFavorite(ctx context.Context, userID, carID uint) error
	RemoveFavorite(ctx context.Context, userID, carID uint) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	carRepo      repository.CarRepository
}

// NewFavoriteService builds a FavoriteService.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, carRepo repository.CarRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, carRepo: carRepo}
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID uint) ([]model.Car, error) {
	return s.favoriteRepo.ListCarsByUser(ctx, userID)
}

// AddFavorite links a car to the user. A duplicate is an error, not a
// silent no-op.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, carID uint) error {
	if _, err := s.carRepo.FindByID(ctx, carID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCarNotFound
		}
		return err
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, carID)
	if err != nil {
		return fmt.Errorf("check favorite: %w", err)
	}
	if exists {
		return errors.ErrFavoriteExists
	}

	favorite := &model.Favorite{UserID: userID, CarID: carID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		// a concurrent add can slip past the pre-check and lose to the
		// unique index
		if errors.IsDuplicateKey(err) {
			return errors.ErrFavoriteExists
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, carID uint) error {
	removed, err := s.favoriteRepo.Delete(ctx, userID, carID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if removed == 0 {
		return errors.ErrFavoriteNotFound
	}
	return nil
}

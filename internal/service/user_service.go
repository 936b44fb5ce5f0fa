package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"elitemotors/internal/errors"
	"elitemotors/internal/model"
	"elitemotors/internal/repository"
)

// UserService exposes administrative user operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id uint, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, callerID, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateRole assigns a new role to the target user. Values outside the
// enumeration are rejected before any lookup.
func (s *userService) UpdateRole(ctx context.Context, id uint, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, errors.ErrInvalidRole
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (s *userService) DeleteUser(ctx context.Context, callerID, id uint) error {
	if callerID == id {
		return errors.ErrSelfDelete
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

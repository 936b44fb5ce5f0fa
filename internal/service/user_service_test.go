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

func TestUserService_UpdateRole(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		role          model.Role
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "promote to owner",
			id:   2,
			role: model.RoleOwner,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleUser}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "unknown role rejected before lookup",
			id:            2,
			role:          model.Role("superuser"),
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidRole,
		},
		{
			name: "user not found",
			id:   99,
			role: model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			user, err := svc.UpdateRole(context.Background(), tt.id, tt.role)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.role, user.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name          string
		callerID      uint
		id            uint
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "deletes another user",
			callerID: 1,
			id:       2,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
				m.On("Delete", mock.Anything, uint(2)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "self delete rejected without touching the store",
			callerID:      1,
			id:            1,
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrSelfDelete,
		},
		{
			name:     "target not found",
			callerID: 1,
			id:       99,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo)
			err := svc.DeleteUser(context.Background(), tt.callerID, tt.id)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

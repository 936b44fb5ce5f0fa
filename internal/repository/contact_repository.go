package repository

import (
	"context"

	"gorm.io/gorm"

	"elitemotors/internal/model"
)

// ContactRepository defines contact-inquiry persistence operations.
type ContactRepository interface {
	Create(ctx context.Context, inquiry *model.ContactInquiry) error
	List(ctx context.Context) ([]model.ContactInquiry, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *contactRepository) List(ctx context.Context) ([]model.ContactInquiry, error) {
	var inquiries []model.ContactInquiry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

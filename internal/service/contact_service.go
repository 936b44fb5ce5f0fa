package service

import (
	"context"
	"fmt"

	"elitemotors/internal/model"
	"elitemotors/internal/repository"
)

// ContactService handles contact-form submissions.
type ContactService interface {
	CreateInquiry(ctx context.Context, inquiry *model.ContactInquiry) (*model.ContactInquiry, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService builds a ContactService.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) CreateInquiry(ctx context.Context, inquiry *model.ContactInquiry) (*model.ContactInquiry, error) {
	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}
	return inquiry, nil
}

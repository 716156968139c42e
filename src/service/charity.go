package service

import (
	"context"

	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/repository"
)

type CharityService struct {
	store *repository.Store
}

func NewCharityService(store *repository.Store) *CharityService {
	return &CharityService{store: store}
}

// List returns the seeded charity collection verbatim.
func (s *CharityService) List(ctx context.Context) ([]domain.Charity, error) {
	result := make([]domain.Charity, 0)

	err := s.store.View(ctx, func(doc *domain.Document) error {
		result = append(result, doc.Charities...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

package service

import (
	"context"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
)

// subscriptionService implements the SubscriptionService interface
type subscriptionService struct {
	store *store.Store
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(st *store.Store) SubscriptionService {
	return &subscriptionService{store: st}
}

// GetSubscription retrieves a subscription by ID
func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*domain.Subscription, error) {
	var sub *domain.Subscription
	err := s.store.View(func(tx *store.Tx) error {
		found := tx.SubscriptionByID(id)
		if found == nil {
			return domain.NotFound("Subscription not found")
		}
		sub = found.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

package service

import (
	"context"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
)

// masterService implements the MasterService interface
type masterService struct {
	store *store.Store
}

// NewMasterService creates a new MasterService
func NewMasterService(st *store.Store) MasterService {
	return &masterService{store: st}
}

// ListGates lists all gates
func (s *masterService) ListGates(ctx context.Context) ([]dto.GatePayload, error) {
	gates := []dto.GatePayload{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, g := range tx.Gates() {
			gates = append(gates, dto.NewGatePayload(g))
		}
		return nil
	})
	return gates, err
}

// ListZones lists zones with derived state, optionally filtered by gate
func (s *masterService) ListZones(ctx context.Context, gateID string) ([]dto.ZonePayload, error) {
	zones := []dto.ZonePayload{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, z := range tx.Zones() {
			if gateID != "" && !hasString(z.GateIDs, gateID) {
				continue
			}
			zones = append(zones, zonePayloadLocked(tx, z))
		}
		return nil
	})
	return zones, err
}

// ListCategories lists all rate categories
func (s *masterService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	err := s.store.View(func(tx *store.Tx) error {
		for _, c := range tx.Categories() {
			copied := *c
			categories = append(categories, &copied)
		}
		return nil
	})
	return categories, err
}

func hasString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

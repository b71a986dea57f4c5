package service

import (
	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
)

// zonePayloadLocked derives a zone's full payload. Must run inside a store
// View/Update closure.
func zonePayloadLocked(tx *store.Tx, zone *domain.Zone) dto.ZonePayload {
	state := domain.ComputeZoneState(zone, tx.CategoryByID(zone.CategoryID), tx.Subscriptions(), tx.Tickets())
	return dto.NewZonePayload(zone, state)
}

// gateIDsForZoneLocked lists the IDs of gates serving the zone. Must run
// inside a store View/Update closure.
func gateIDsForZoneLocked(tx *store.Tx, zoneID string) []string {
	var ids []string
	for _, g := range tx.GatesForZone(zoneID) {
		ids = append(ids, g.ID)
	}
	return ids
}

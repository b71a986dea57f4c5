package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/events"
)

func TestGetSubscription(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubscriptionService(st)
	ctx := context.Background()

	sub, err := svc.GetSubscription(ctx, "sub_1")
	require.NoError(t, err)
	assert.Equal(t, "sub_1", sub.ID)
	assert.Equal(t, "Ali", sub.UserName)
	assert.True(t, sub.Active)

	_, err = svc.GetSubscription(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, "Subscription not found", err.Error())
}

func TestGetSubscriptionSnapshotSurvivesCheckin(t *testing.T) {
	st := newTestStore(t)
	svc := NewSubscriptionService(st)
	tsvc := newTestTicketService(st, events.NewBroker())
	ctx := context.Background()

	before, err := svc.GetSubscription(ctx, "sub_1")
	require.NoError(t, err)
	require.Empty(t, before.CurrentCheckins)

	_, err = tsvc.Checkin(ctx, &dto.CheckinRequest{GateID: "gate_1", ZoneID: "zone_a", Type: "subscriber", SubscriptionID: "sub_1"})
	require.NoError(t, err)

	// the earlier snapshot must not see the new record
	assert.Empty(t, before.CurrentCheckins)

	after, err := svc.GetSubscription(ctx, "sub_1")
	require.NoError(t, err)
	assert.Len(t, after.CurrentCheckins, 1)
}

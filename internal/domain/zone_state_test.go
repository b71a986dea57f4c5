package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activeSub(id, categoryID string, checkins int) *Subscription {
	s := &Subscription{ID: id, Active: true, Categories: []string{categoryID}}
	for i := 0; i < checkins; i++ {
		s.CurrentCheckins = append(s.CurrentCheckins, CheckinRecord{TicketID: id + "-t", ZoneID: "z"})
	}
	return s
}

func TestReservedForCategory(t *testing.T) {
	tests := []struct {
		name string
		subs []*Subscription
		want int
	}{
		{
			name: "no subscriptions",
			subs: nil,
			want: 0,
		},
		{
			name: "twenty active none inside",
			subs: func() []*Subscription {
				var subs []*Subscription
				for i := 0; i < 20; i++ {
					subs = append(subs, activeSub(string(rune('a'+i)), "cat", 0))
				}
				return subs
			}(),
			want: 3, // ceil(20 * 0.15)
		},
		{
			name: "inactive ignored",
			subs: []*Subscription{
				{ID: "s1", Active: false, Categories: []string{"cat"}},
			},
			want: 0,
		},
		{
			name: "other category ignored",
			subs: []*Subscription{
				activeSub("s1", "other", 0),
			},
			want: 0,
		},
		{
			name: "one active one inside",
			subs: []*Subscription{
				activeSub("s1", "cat", 1),
				activeSub("s2", "cat", 0),
			},
			want: 1, // ceil(1 * 0.15)
		},
		{
			name: "more checkins than subs clamps at zero",
			subs: []*Subscription{
				activeSub("s1", "cat", 3),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReservedForCategory("cat", tt.subs))
		})
	}
}

func TestComputeZoneState(t *testing.T) {
	category := &Category{ID: "cat", RateNormal: 3, RateSpecial: 5}

	t.Run("reservation carved out of visitor availability", func(t *testing.T) {
		zone := &Zone{ID: "z1", CategoryID: "cat", TotalSlots: 100, Occupied: 60, Open: true}
		var subs []*Subscription
		for i := 0; i < 20; i++ {
			subs = append(subs, activeSub(string(rune('a'+i)), "cat", 0))
		}

		state := ComputeZoneState(zone, category, subs, nil)

		assert.Equal(t, 3, state.Reserved)
		assert.Equal(t, 60, state.Occupied)
		assert.Equal(t, 40, state.Free)
		assert.Equal(t, 37, state.AvailableForVisitors)
		assert.Equal(t, 40, state.AvailableForSubscribers)
		assert.Equal(t, 3.0, state.RateNormal)
		assert.Equal(t, 5.0, state.RateSpecial)
	})

	t.Run("open subscriber tickets consume the reservation", func(t *testing.T) {
		zone := &Zone{ID: "z1", CategoryID: "cat", TotalSlots: 100, Occupied: 60, Open: true}
		var subs []*Subscription
		for i := 0; i < 20; i++ {
			checkins := 0
			if i < 2 {
				checkins = 1
			}
			subs = append(subs, activeSub(string(rune('a'+i)), "cat", checkins))
		}
		tickets := []*Ticket{
			{ID: "t1", Type: TicketTypeSubscriber, ZoneID: "z1"},
			{ID: "t2", Type: TicketTypeSubscriber, ZoneID: "z1"},
		}

		state := ComputeZoneState(zone, category, subs, tickets)

		// 18 outside -> reserved raw 3, two already parked here -> one held back
		assert.Equal(t, 3, state.Reserved)
		assert.Equal(t, 39, state.AvailableForVisitors)
		assert.Equal(t, 40, state.AvailableForSubscribers)
	})

	t.Run("full zone floors at zero", func(t *testing.T) {
		zone := &Zone{ID: "z1", CategoryID: "cat", TotalSlots: 10, Occupied: 10, Open: true}
		subs := []*Subscription{activeSub("s1", "cat", 0)}

		state := ComputeZoneState(zone, category, subs, nil)

		assert.Equal(t, 0, state.Free)
		assert.Equal(t, 0, state.AvailableForVisitors)
		assert.Equal(t, 0, state.AvailableForSubscribers)
	})

	t.Run("overbooked occupancy never yields negative counts", func(t *testing.T) {
		zone := &Zone{ID: "z1", CategoryID: "cat", TotalSlots: 10, Occupied: 12, Open: true}

		state := ComputeZoneState(zone, category, nil, nil)

		assert.Equal(t, 12, state.Occupied)
		assert.Equal(t, 0, state.Free)
		assert.Equal(t, 0, state.AvailableForVisitors)
	})

	t.Run("reserved capped by total slots", func(t *testing.T) {
		zone := &Zone{ID: "z1", CategoryID: "cat", TotalSlots: 2, Occupied: 0, Open: true}
		var subs []*Subscription
		for i := 0; i < 40; i++ {
			subs = append(subs, activeSub(string(rune('a'+i)), "cat", 0))
		}

		state := ComputeZoneState(zone, category, subs, nil)

		assert.Equal(t, 2, state.Reserved)
	})

	t.Run("nil category zeroes the rates", func(t *testing.T) {
		zone := &Zone{ID: "z1", CategoryID: "missing", TotalSlots: 10, Open: true}

		state := ComputeZoneState(zone, nil, nil, nil)

		assert.Equal(t, 0.0, state.RateNormal)
		assert.Equal(t, 0.0, state.RateSpecial)
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		zone := &Zone{ID: "z1", CategoryID: "cat", TotalSlots: 50, Occupied: 13, Open: true}
		subs := []*Subscription{activeSub("s1", "cat", 0), activeSub("s2", "cat", 1)}
		tickets := []*Ticket{{ID: "t1", Type: TicketTypeSubscriber, ZoneID: "z1"}}

		first := ComputeZoneState(zone, category, subs, tickets)
		second := ComputeZoneState(zone, category, subs, tickets)

		assert.Equal(t, first, second)
	})
}

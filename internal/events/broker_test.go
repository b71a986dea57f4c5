package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrokerZoneUpdateScopedByGate(t *testing.T) {
	broker := NewBroker()

	var gate1, gate2 []Message
	broker.Subscribe([]string{"gate_1"}, func(msg Message) { gate1 = append(gate1, msg) })
	broker.Subscribe([]string{"gate_2"}, func(msg Message) { gate2 = append(gate2, msg) })

	broker.PublishZoneUpdate([]string{"gate_1"}, "zone-a-state")

	assert.Len(t, gate1, 1)
	assert.Empty(t, gate2)
	assert.Equal(t, TypeZoneUpdate, gate1[0].Type)
	assert.Equal(t, "zone-a-state", gate1[0].Payload)
}

func TestBrokerZoneUpdateReachesSharedGates(t *testing.T) {
	broker := NewBroker()

	var got []Message
	broker.Subscribe([]string{"gate_2"}, func(msg Message) { got = append(got, msg) })

	// zone served by both gates
	broker.PublishZoneUpdate([]string{"gate_1", "gate_2"}, "payload")

	assert.Len(t, got, 1)
}

func TestBrokerEmptyGateListReceivesEverything(t *testing.T) {
	broker := NewBroker()

	var got []Message
	broker.Subscribe(nil, func(msg Message) { got = append(got, msg) })

	broker.PublishZoneUpdate([]string{"gate_1"}, "a")
	broker.PublishZoneUpdate([]string{"gate_9"}, "b")

	assert.Len(t, got, 2)
}

func TestBrokerAdminUpdateReachesAllListeners(t *testing.T) {
	broker := NewBroker()

	var gate1, gate2 []Message
	broker.Subscribe([]string{"gate_1"}, func(msg Message) { gate1 = append(gate1, msg) })
	broker.Subscribe([]string{"gate_2"}, func(msg Message) { gate2 = append(gate2, msg) })

	broker.PublishAdminUpdate(AdminUpdate{Action: "zone-closed", TargetType: "zone", TargetID: "z1"})

	assert.Len(t, gate1, 1)
	assert.Len(t, gate2, 1)
	assert.Equal(t, TypeAdminUpdate, gate1[0].Type)
}

func TestBrokerUnsubscribe(t *testing.T) {
	broker := NewBroker()

	var got []Message
	unsubscribe := broker.Subscribe([]string{"gate_1"}, func(msg Message) { got = append(got, msg) })

	broker.PublishZoneUpdate([]string{"gate_1"}, "a")
	unsubscribe()
	broker.PublishZoneUpdate([]string{"gate_1"}, "b")

	assert.Len(t, got, 1)
	assert.Equal(t, 0, broker.ListenerCount())
}

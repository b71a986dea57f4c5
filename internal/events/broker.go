// Package events implements the in-process broadcast channel that replaces a
// push transport: services publish zone and admin updates, listeners receive
// them synchronously scoped by gate.
package events

import (
	"sync"
	"time"
)

// Message types pushed to listeners
const (
	TypeZoneUpdate  = "zone-update"
	TypeAdminUpdate = "admin-update"
)

// Message is one broadcast envelope
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Listener receives broadcast messages. Called synchronously under the
// broker's read lock; implementations must return quickly and never call
// back into the broker.
type Listener func(msg Message)

type subscription struct {
	id      uint64
	gateIDs map[string]bool // nil means all gates
	fn      Listener
}

// Broker fans broadcast messages out to subscribed listeners. A listener
// subscribed to specific gates receives zone updates only for zones served
// by those gates; admin updates always reach every listener.
type Broker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []*subscription
}

// NewBroker creates an empty broker
func NewBroker() *Broker {
	return &Broker{}
}

// Subscribe registers a listener for the given gates. An empty gate list
// subscribes to everything. The returned function removes the subscription.
func (b *Broker) Subscribe(gateIDs []string, fn Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscription{id: b.nextID, fn: fn}
	if len(gateIDs) > 0 {
		sub.gateIDs = make(map[string]bool, len(gateIDs))
		for _, id := range gateIDs {
			sub.gateIDs[id] = true
		}
	}
	b.subs = append(b.subs, sub)

	id := sub.id
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// PublishZoneUpdate delivers a zone payload to listeners watching any of the
// given gates
func (b *Broker) PublishZoneUpdate(gateIDs []string, payload interface{}) {
	msg := Message{Type: TypeZoneUpdate, Payload: payload}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if sub.gateIDs == nil || anyGate(sub.gateIDs, gateIDs) {
			sub.fn(msg)
		}
	}
}

// PublishAdminUpdate delivers an admin change notification to every listener
func (b *Broker) PublishAdminUpdate(payload interface{}) {
	msg := Message{Type: TypeAdminUpdate, Payload: payload}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		sub.fn(msg)
	}
}

// ListenerCount returns the number of active subscriptions
func (b *Broker) ListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func anyGate(watched map[string]bool, gateIDs []string) bool {
	for _, id := range gateIDs {
		if watched[id] {
			return true
		}
	}
	return false
}

// AdminUpdate describes a configuration change made by an admin
type AdminUpdate struct {
	AdminID    string      `json:"adminId"`
	Action     string      `json:"action"`
	TargetType string      `json:"targetType"`
	TargetID   string      `json:"targetId"`
	Details    interface{} `json:"details,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

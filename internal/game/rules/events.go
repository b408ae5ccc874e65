package rules

import (
	"fmt"
	"sync"
)

// Phase is the lifecycle step of an action a notification belongs to.
type Phase int

const (
	// PhaseValidate is published before an action runs. Handlers may only
	// veto through the Validator and must not touch game state.
	PhaseValidate Phase = iota
	// PhasePerform is published when a validated action runs.
	PhasePerform
)

func (p Phase) String() string {
	switch p {
	case PhaseValidate:
		return "VALIDATE"
	case PhasePerform:
		return "PERFORM"
	default:
		return fmt.Sprintf("PHASE_%d", int(p))
	}
}

// Key addresses the subscribers of one action kind in one phase.
type Key struct {
	Kind  ActionKind
	Phase Phase
}

func (k Key) String() string {
	return k.Kind.String() + "." + k.Phase.String()
}

// ValidateKey returns the validation key for kind.
func ValidateKey(kind ActionKind) Key {
	return Key{Kind: kind, Phase: PhaseValidate}
}

// PerformKey returns the perform key for kind.
func PerformKey(kind ActionKind) Key {
	return Key{Kind: kind, Phase: PhasePerform}
}

// Notification is what handlers receive.
type Notification struct {
	Key    Key
	Action Action
	// Validator is set for PhaseValidate notifications only.
	Validator *Validator
}

// Handler reacts to a notification.
type Handler func(Notification)

type subscription struct {
	handle  int
	handler Handler
}

// Bus is a synchronous publish/subscribe channel keyed by action kind and
// phase. Handlers for a key run in subscription order on the caller's
// goroutine.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[Key][]subscription
	keys          map[int]Key
	nextHandle    int
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{
		subscriptions: make(map[Key][]subscription),
		keys:          make(map[int]Key),
	}
}

// Subscribe registers handler for key and returns a handle for Unsubscribe.
// A nil handler is ignored and yields -1.
func (bus *Bus) Subscribe(key Key, handler Handler) int {
	if handler == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.subscriptions[key] = append(bus.subscriptions[key], subscription{handle: handle, handler: handler})
	bus.keys[handle] = key
	return handle
}

// Unsubscribe removes the subscription identified by handle. It reports
// whether the handle was known.
func (bus *Bus) Unsubscribe(handle int) bool {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	key, ok := bus.keys[handle]
	if !ok {
		return false
	}
	delete(bus.keys, handle)
	subs := bus.subscriptions[key]
	for i := range subs {
		if subs[i].handle == handle {
			// Copy so an in-flight Publish keeps iterating its own snapshot.
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			bus.subscriptions[key] = next
			break
		}
	}
	if len(bus.subscriptions[key]) == 0 {
		delete(bus.subscriptions, key)
	}
	return true
}

// Publish delivers n to every handler subscribed to key and returns once they
// have all returned. Subscriptions made by handlers take effect on the next
// publish.
func (bus *Bus) Publish(key Key, n Notification) {
	bus.mu.RLock()
	subs := bus.subscriptions[key]
	bus.mu.RUnlock()

	n.Key = key
	for _, sub := range subs {
		sub.handler(n)
	}
}

// HandlerCount returns the number of handlers subscribed to key.
func (bus *Bus) HandlerCount(key Key) int {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	return len(bus.subscriptions[key])
}

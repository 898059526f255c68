package session

import "sync"

// EventKind names a session event.
type EventKind string

const (
	EventLogin  EventKind = "login"
	EventLogout EventKind = "logout"
)

// Event is delivered to subscribers. User is set for EventLogin only.
type Event struct {
	Kind EventKind
	User *UserView
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	bus  *bus
	kind EventKind
	id   uint64
}

// Unsubscribe stops delivery to the subscription's callback. It is safe to
// call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.kind, s.id)
}

type subscriber struct {
	id uint64
	fn func(Event)
}

// bus delivers events synchronously, in registration order.
type bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[EventKind][]subscriber
}

func newBus() *bus {
	return &bus{subs: make(map[EventKind][]subscriber)}
}

func (b *bus) add(kind EventKind, fn func(Event)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[kind] = append(b.subs[kind], subscriber{id: b.nextID, fn: fn})
	return &Subscription{bus: b, kind: kind, id: b.nextID}
}

func (b *bus) remove(kind EventKind, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[kind]
	for i, s := range list {
		if s.id == id {
			b.subs[kind] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

func (b *bus) emit(e Event) {
	b.mu.Lock()
	list := append([]subscriber(nil), b.subs[e.Kind]...)
	b.mu.Unlock()

	for _, s := range list {
		s.fn(e)
	}
}

package ui

import "sort"

// PointerHandler receives the screen cell of a pointer-down event
type PointerHandler func(x, y int)

// PointerBus fans every pointer-down event out to its subscribers before the
// event reaches the component under the pointer. Controls use it to notice
// interactions that happen outside their own region.
type PointerBus struct {
	nextID   int
	handlers map[int]PointerHandler
}

// NewPointerBus creates an empty bus
func NewPointerBus() *PointerBus {
	return &PointerBus{
		handlers: make(map[int]PointerHandler),
	}
}

// Subscribe attaches h until the returned subscription is closed
func (b *PointerBus) Subscribe(h PointerHandler) *Subscription {
	b.nextID++
	b.handlers[b.nextID] = h
	return &Subscription{bus: b, id: b.nextID}
}

// Publish delivers a pointer-down to every subscriber in subscription order
func (b *PointerBus) Publish(x, y int) {
	ids := make([]int, 0, len(b.handlers))
	for id := range b.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if h, ok := b.handlers[id]; ok {
			h(x, y)
		}
	}
}

// Len returns the number of attached subscribers
func (b *PointerBus) Len() int {
	return len(b.handlers)
}

// Subscription is a handle on one attached PointerHandler
type Subscription struct {
	bus *PointerBus
	id  int
}

// Close detaches the handler. Closing twice is a no-op.
func (s *Subscription) Close() {
	if s == nil || s.bus == nil {
		return
	}
	delete(s.bus.handlers, s.id)
	s.bus = nil
}

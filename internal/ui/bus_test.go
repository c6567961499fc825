package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPointerBus(t *testing.T) {
	bus := NewPointerBus()
	var got []string

	a := bus.Subscribe(func(x, y int) { got = append(got, "a") })
	bus.Subscribe(func(x, y int) { got = append(got, "b") })

	bus.Publish(1, 1)
	a.Close()
	a.Close()
	bus.Publish(2, 2)

	if diff := cmp.Diff([]string{"a", "b", "b"}, got); diff != "" {
		t.Errorf("delivery mismatch (-want +got):\n%s", diff)
	}
	if bus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", bus.Len())
	}
}

func TestSubscriptionCloseNil(t *testing.T) {
	var s *Subscription
	s.Close()
}

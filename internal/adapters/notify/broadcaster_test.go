package notify

import "testing"

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster()

	var first, second int
	b.Subscribe(func() { first++ })
	b.Subscribe(func() { second++ })

	b.Broadcast()
	b.Broadcast()

	if first != 2 || second != 2 {
		t.Errorf("subscriber counts = (%d, %d), want (2, 2)", first, second)
	}
}

func TestBroadcaster_NoSubscribers(t *testing.T) {
	b := NewBroadcaster()
	// must not panic
	b.Broadcast()
}

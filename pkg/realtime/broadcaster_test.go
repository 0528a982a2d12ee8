package realtime

import "testing"

func TestBroadcaster_PublishDeliversToSubscribers(t *testing.T) {
	b := NewBroadcaster[string]()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	defer b.Unsubscribe(ch1)
	defer b.Unsubscribe(ch2)

	b.Publish("state")
	if got := <-ch1; got != "state" {
		t.Errorf("ch1 got %q, want state", got)
	}
	if got := <-ch2; got != "state" {
		t.Errorf("ch2 got %q, want state", got)
	}
}

func TestBroadcaster_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster[int]()
	ch := b.Subscribe()
	b.Unsubscribe(ch)
	if _, open := <-ch; open {
		t.Error("channel should be closed after Unsubscribe")
	}
	b.Unsubscribe(ch)
	if b.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", b.Subscribers())
	}
}

func TestBroadcaster_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster[int]()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)
	for i := 0; i < subscriberBuffer*2; i++ {
		b.Publish(i)
	}
	if len(ch) != subscriberBuffer {
		t.Errorf("buffered %d events, want %d", len(ch), subscriberBuffer)
	}
	if got := <-ch; got != 0 {
		t.Errorf("first event %d, want 0", got)
	}
}

func TestBroadcaster_Close(t *testing.T) {
	b := NewBroadcaster[int]()
	ch := b.Subscribe()
	b.Close()
	if _, open := <-ch; open {
		t.Error("Close should close subscriber channels")
	}
}

func TestBroadcaster_SubscribeAfterClose(t *testing.T) {
	b := NewBroadcaster[int]()
	b.Close()
	ch := b.Subscribe()
	if _, open := <-ch; open {
		t.Error("channel should be closed after Close")
	}
	if b.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", b.Subscribers())
	}
	b.Unsubscribe(ch)
}

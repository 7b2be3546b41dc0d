package easel

import "testing"

func TestTopicPublishOrder(t *testing.T) {
	var topic Topic[int]
	var got []int
	topic.Subscribe(func(v int) { got = append(got, v*10) })
	topic.Subscribe(func(v int) { got = append(got, v*100) })

	topic.Publish(1)
	topic.Publish(2)

	want := []int{10, 100, 20, 200}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestTopicPublishWithoutSubscribers(t *testing.T) {
	var topic Topic[string]
	// The zero value must be publishable.
	topic.Publish("nobody listening")
}

func TestSubscriptionRemove(t *testing.T) {
	var topic Topic[int]
	var a, b int
	subA := topic.Subscribe(func(int) { a++ })
	topic.Subscribe(func(int) { b++ })

	topic.Publish(0)
	subA.Remove()
	topic.Publish(0)

	if a != 1 {
		t.Errorf("removed handler fired %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining handler fired %d times, want 2", b)
	}
}

func TestSubscriptionRemoveTwice(t *testing.T) {
	var topic Topic[int]
	sub := topic.Subscribe(func(int) {})
	sub.Remove()
	sub.Remove() // second removal is a no-op

	var fired int
	topic.Subscribe(func(int) { fired++ })
	topic.Publish(0)
	if fired != 1 {
		t.Errorf("surviving handler fired %d times, want 1", fired)
	}
}

func TestSubscriptionRemoveDuringPublish(t *testing.T) {
	var topic Topic[int]
	var oneShot, other int

	// A one-shot subscriber removes itself from inside its own handler.
	var sub Subscription
	sub = topic.Subscribe(func(int) {
		oneShot++
		sub.Remove()
	})
	topic.Subscribe(func(int) { other++ })

	topic.Publish(0) // must not panic
	topic.Publish(0)

	if oneShot != 1 {
		t.Errorf("one-shot handler fired %d times, want 1", oneShot)
	}
	if other != 2 {
		t.Errorf("remaining handler fired %d times, want 2", other)
	}
}

func TestSubscriptionRemoveLaterHandlerDuringPublish(t *testing.T) {
	var topic Topic[int]
	var fired int

	// The first handler removes the second mid-delivery. The second still
	// sees the in-flight event; removal applies from the next Publish.
	var subB Subscription
	topic.Subscribe(func(int) { subB.Remove() })
	subB = topic.Subscribe(func(int) { fired++ })

	topic.Publish(0)
	topic.Publish(0)

	if fired != 1 {
		t.Errorf("removed handler fired %d times, want 1", fired)
	}
}

func TestSubscriptionZeroValue(t *testing.T) {
	var sub Subscription
	sub.Remove() // must not panic
}
